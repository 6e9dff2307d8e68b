package field

// MoveLeft shifts the falling piece one column to the left. It reports
// whether the piece moved; a blocked move leaves the grid untouched.
func (f *Field) MoveLeft() bool {
	return f.shift(-1)
}

// MoveRight shifts the falling piece one column to the right. It reports
// whether the piece moved; a blocked move leaves the grid untouched.
func (f *Field) MoveRight() bool {
	return f.shift(1)
}

// shift moves every Falling cell by dir columns. Columns are visited in the
// direction of travel, leading edge first, so each cell is written into a
// square that has already been vacated or checked.
func (f *Field) shift(dir int) bool {
	if !f.canShift(dir) {
		return false
	}

	cols := f.cfg.Cols
	first, last := 0, cols
	if dir > 0 {
		first, last = cols-1, -1
	}
	step := -dir

	moved := false
	for row := range f.cfg.Rows {
		for col := first; col != last; col += step {
			i := f.index(row, col)
			if f.cells[i] != Falling {
				continue
			}
			f.cells[i+dir] = Falling
			f.cells[i] = Empty
			moved = true
		}
	}
	return moved
}

func (f *Field) canShift(dir int) bool {
	for pos, c := range f.Cells() {
		if c != Falling {
			continue
		}
		col := pos.Col + dir
		if col < 0 || col >= f.cfg.Cols {
			return false
		}
		if f.Get(pos.Row, col).Occupied() {
			return false
		}
	}
	return true
}
