package field

// ClearMarkedLines removes every fully Marked scoring row and returns how
// many were removed.
//
// Rows are examined bottom-up. When a row is removed, the scoring rows above
// it drop by one row and the same row index is examined again. Falling cells
// stay where they are and hold up the settled cells above them in the same
// column. The spawn buffer is never compacted.
func (f *Field) ClearMarkedLines() int {
	scoring := f.cfg.ScoringRows()
	cleared := 0

	for row := 0; row < scoring; row++ {
		if !f.RowFull(row, Marked) {
			continue
		}
		f.fillRow(row, Empty)
		cleared++
		f.compact(row, scoring)
		row--
	}
	return cleared
}

// compact drops the content of rows (from, limit) into the row below, one
// column at a time. A column stops dropping at its first Falling square:
// the piece and everything resting above it stay where they are.
func (f *Field) compact(from, limit int) {
	cols := f.cfg.Cols
	for col := range cols {
		for row := from + 1; row < limit; row++ {
			src := f.index(row, col)
			if f.cells[src] == Falling {
				break
			}
			f.cells[src-cols] = f.cells[src]
			f.cells[src] = Empty
		}
	}
}
