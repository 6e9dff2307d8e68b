package field

// Cell is the state of a single grid square.
type Cell uint8

const (
	// Empty means no block is present.
	Empty Cell = iota
	// Falling cells belong to the active, player-controlled piece.
	Falling
	// Solid cells are permanently settled blocks.
	Solid
	// Marked cells belong to a completed row waiting for ClearMarkedLines.
	Marked
)

var cellNames = [...]string{
	Empty:   "empty",
	Falling: "falling",
	Solid:   "solid",
	Marked:  "marked",
}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "invalid"
}

// Occupied reports whether the cell holds settled content that a falling
// piece cannot pass through.
func (c Cell) Occupied() bool {
	return c == Solid || c == Marked
}

// Valid reports whether c is one of the four known states.
func (c Cell) Valid() bool {
	return c <= Marked
}
