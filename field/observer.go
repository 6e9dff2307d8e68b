package field

import "github.com/kamstrup/intmap"

// ChangeSet holds the cells that changed between two observations, keyed by
// flat cell index (row*cols + col).
type ChangeSet struct {
	cols    int
	cells   *intmap.Map[int, Cell]
	indices []int
}

// Len returns the number of changed cells.
func (cs *ChangeSet) Len() int {
	return len(cs.indices)
}

// Get returns the new value of the cell at pos and whether it changed.
func (cs *ChangeSet) Get(pos Pos) (Cell, bool) {
	return cs.cells.Get(pos.Row*cs.cols + pos.Col)
}

// Each calls fn for every changed cell, bottom-up and left to right.
func (cs *ChangeSet) Each(fn func(Pos, Cell)) {
	for _, i := range cs.indices {
		c, _ := cs.cells.Get(i)
		fn(Pos{Row: i / cs.cols, Col: i % cs.cols}, c)
	}
}

// Observer tracks a field on behalf of a renderer that only wants to redraw
// the squares that changed since its last frame.
type Observer struct {
	field    *Field
	baseline []Cell
}

// NewObserver starts observing f. The first call to Changes reports every
// cell that is not Empty.
func NewObserver(f *Field) *Observer {
	return &Observer{
		field:    f,
		baseline: make([]Cell, len(f.cells)),
	}
}

// Changes returns the cells that differ from the previous call and makes
// the current state the new baseline.
func (o *Observer) Changes() *ChangeSet {
	cs := &ChangeSet{
		cols:  o.field.cfg.Cols,
		cells: intmap.New[int, Cell](8),
	}
	for i, c := range o.field.cells {
		if o.baseline[i] == c {
			continue
		}
		cs.cells.Put(i, c)
		cs.indices = append(cs.indices, i)
	}
	copy(o.baseline, o.field.cells)
	return cs
}

// Sync makes the current state the baseline without reporting changes.
func (o *Observer) Sync() {
	copy(o.baseline, o.field.cells)
}
