package field

// footprint is the falling piece cropped to its bounding box. cells[0] is
// the top row of the box.
type footprint struct {
	top, left int
	cells     [][]bool
}

func (fp footprint) height() int { return len(fp.cells) }

func (fp footprint) width() int {
	if len(fp.cells) == 0 {
		return 0
	}
	return len(fp.cells[0])
}

// Rotate turns the falling piece 90 degrees inside its own bounding box and
// reports whether the rotation was applied.
//
// The rotated box keeps the top-left corner of the original one. There are
// no wall kicks: if any rotated cell would leave the grid or overlap settled
// content, the grid is left untouched. Square boxes (such as the O piece)
// never rotate, and neither does a piece whose top row is the top row of the
// grid.
func (f *Field) Rotate() bool {
	fp, ok := f.locatePiece()
	if !ok || fp.width() == fp.height() {
		return false
	}
	if fp.top > f.cfg.Rows-2 {
		return false
	}

	rotated := fp.transpose()

	scratch := f.Clone()
	for i, c := range scratch.cells {
		if c == Falling {
			scratch.cells[i] = Empty
		}
	}

	for r, line := range rotated.cells {
		for c, set := range line {
			row, col := rotated.top-r, rotated.left+c
			if !scratch.InBounds(row, col) {
				return false
			}
			if !set {
				continue
			}
			if scratch.Get(row, col).Occupied() {
				return false
			}
			scratch.Set(row, col, Falling)
		}
	}

	f.CopyFrom(scratch)
	return true
}

// locatePiece sweeps the grid top-down and crops the Falling cells to their
// bounding box.
func (f *Field) locatePiece() (footprint, bool) {
	minCol, maxCol := f.cfg.Cols, -1
	top, bottom := -1, -1

	for row := f.cfg.Rows - 1; row >= 0; row-- {
		for col := range f.cfg.Cols {
			if f.Get(row, col) != Falling {
				continue
			}
			minCol = min(minCol, col)
			maxCol = max(maxCol, col)
			if top < 0 {
				top = row
			}
			bottom = row
		}
	}
	if top < 0 {
		return footprint{}, false
	}

	fp := footprint{top: top, left: minCol}
	for row := top; row >= bottom; row-- {
		line := make([]bool, maxCol-minCol+1)
		for col := range line {
			line[col] = f.Get(row, minCol+col) == Falling
		}
		fp.cells = append(fp.cells, line)
	}
	return fp, true
}

// transpose rotates the box a quarter turn: new[w-1-c][r] = old[r][c].
func (fp footprint) transpose() footprint {
	h, w := fp.height(), fp.width()
	out := footprint{top: fp.top, left: fp.left, cells: make([][]bool, w)}
	for i := range out.cells {
		out.cells[i] = make([]bool, h)
	}
	for r, line := range fp.cells {
		for c, set := range line {
			if set {
				out.cells[w-1-c][r] = true
			}
		}
	}
	return out
}
