package field

// AdvanceResult describes the outcome of one gravity tick.
type AdvanceResult struct {
	// Landed is true when the falling piece became Solid. The caller must
	// spawn the next piece.
	Landed bool
	// LandedRow is the row of the first blocked cell found scanning
	// bottom-up, or -1 when nothing landed.
	LandedRow int
	// HasLinesToClear is true when this tick marked at least one row and
	// ClearMarkedLines should be called.
	HasLinesToClear bool
}

// Advance applies one gravity tick.
//
// If any Falling cell sits on the floor or on occupied content, the whole
// piece lands: every Falling cell becomes Solid and nothing moves. Otherwise
// every Falling cell moves down one row. Either way, completed scoring rows
// are then marked for removal.
//
// Cells are scanned bottom-up so that a cell is always moved after the cell
// below it has vacated its square, and never twice.
func (f *Field) Advance() AdvanceResult {
	res := AdvanceResult{LandedRow: -1}

	if row, blocked := f.firstBlocked(); blocked {
		f.solidify()
		res.Landed = true
		res.LandedRow = row
	} else {
		f.shiftDown()
	}

	res.HasLinesToClear = f.markFullRows()
	return res
}

// firstBlocked returns the row of the lowest Falling cell that cannot move
// down.
func (f *Field) firstBlocked() (int, bool) {
	cols := f.cfg.Cols
	for i, c := range f.cells {
		if c != Falling {
			continue
		}
		if i < cols || f.cells[i-cols].Occupied() {
			return i / cols, true
		}
	}
	return -1, false
}

func (f *Field) solidify() {
	for i, c := range f.cells {
		if c == Falling {
			f.cells[i] = Solid
		}
	}
}

func (f *Field) shiftDown() {
	cols := f.cfg.Cols
	for i := cols; i < len(f.cells); i++ {
		if f.cells[i] != Falling {
			continue
		}
		f.cells[i-cols] = Falling
		f.cells[i] = Empty
	}
}

// markFullRows turns every fully Solid scoring row into Marked and reports
// whether it marked any.
func (f *Field) markFullRows() bool {
	marked := false
	for row := range f.cfg.ScoringRows() {
		if f.RowFull(row, Solid) {
			f.fillRow(row, Marked)
			marked = true
		}
	}
	return marked
}

func (f *Field) fillRow(row int, c Cell) {
	start := f.index(row, 0)
	for i := start; i < start+f.cfg.Cols; i++ {
		f.cells[i] = c
	}
}
