// Package field implements the board engine of a falling-block puzzle game.
//
// A Field is a fixed-size grid of cells with row 0 at the bottom. Every
// operation mutates the grid in place and is either applied completely or
// not at all. The engine never spawns pieces and performs no locking: the
// caller owns the Field and must serialize calls.
package field

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

const (
	DefaultRows        = 24
	DefaultCols        = 10
	DefaultSpawnBuffer = 4
)

var (
	ErrInvalidSize        = errors.New("field: rows and cols must be positive")
	ErrInvalidSpawnBuffer = errors.New("field: spawn buffer must be in [0, rows)")
)

// Config describes the dimensions of a field. The top SpawnBuffer rows are
// reserved for piece entry and are never detected as full or compacted.
type Config struct {
	Rows        int
	Cols        int
	SpawnBuffer int
}

// DefaultConfig returns the 24x10 board with a 4 row spawn buffer.
func DefaultConfig() Config {
	return Config{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		SpawnBuffer: DefaultSpawnBuffer,
	}
}

// Validate checks that the configuration describes a usable grid.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Rows, c.Cols)
	}
	if c.SpawnBuffer < 0 || c.SpawnBuffer >= c.Rows {
		return fmt.Errorf("%w: got %d with %d rows", ErrInvalidSpawnBuffer, c.SpawnBuffer, c.Rows)
	}
	return nil
}

// ScoringRows is the number of rows, counted from the bottom, that take part
// in line detection and clearing.
func (c Config) ScoringRows() int {
	return c.Rows - c.SpawnBuffer
}

// Pos addresses a cell by row (0 is the bottom) and column.
type Pos struct {
	Row, Col int
}

// Field is the game grid.
type Field struct {
	cfg   Config
	cells []Cell
}

// New creates an empty field with the default configuration.
func New() *Field {
	f, _ := NewWithConfig(DefaultConfig())
	return f
}

// NewWithConfig creates an empty field of the given size.
func NewWithConfig(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Field{
		cfg:   cfg,
		cells: make([]Cell, cfg.Rows*cfg.Cols),
	}, nil
}

// Config returns the dimensions the field was created with.
func (f *Field) Config() Config { return f.cfg }

// Rows returns the grid height.
func (f *Field) Rows() int { return f.cfg.Rows }

// Cols returns the grid width.
func (f *Field) Cols() int { return f.cfg.Cols }

// InBounds reports whether row and col address a cell of the grid.
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.cfg.Rows && col >= 0 && col < f.cfg.Cols
}

// Get returns the cell at row, col. Addresses outside the grid read as Empty.
func (f *Field) Get(row, col int) Cell {
	if !f.InBounds(row, col) {
		return Empty
	}
	return f.cells[row*f.cfg.Cols+col]
}

// Set stores c at row, col. It panics if the address is outside the grid.
func (f *Field) Set(row, col int, c Cell) {
	if !f.InBounds(row, col) {
		panic(fmt.Sprintf("field: Set(%d, %d) out of bounds for %dx%d grid", row, col, f.cfg.Rows, f.cfg.Cols))
	}
	f.cells[row*f.cfg.Cols+col] = c
}

// Row returns a copy of the given row.
func (f *Field) Row(row int) []Cell {
	start := row * f.cfg.Cols
	return slices.Clone(f.cells[start : start+f.cfg.Cols])
}

// RowFull reports whether every cell of row equals c.
func (f *Field) RowFull(row int, c Cell) bool {
	start := row * f.cfg.Cols
	for _, cell := range f.cells[start : start+f.cfg.Cols] {
		if cell != c {
			return false
		}
	}
	return true
}

// Cells yields every cell bottom-up, left to right.
func (f *Field) Cells() iter.Seq2[Pos, Cell] {
	return func(yield func(Pos, Cell) bool) {
		for i, c := range f.cells {
			if !yield(Pos{Row: i / f.cfg.Cols, Col: i % f.cfg.Cols}, c) {
				return
			}
		}
	}
}

// Count returns the number of cells equal to c.
func (f *Field) Count(c Cell) int {
	n := 0
	for _, cell := range f.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	return &Field{
		cfg:   f.cfg,
		cells: slices.Clone(f.cells),
	}
}

// CopyFrom overwrites f with the contents of src. Both fields must have the
// same dimensions.
func (f *Field) CopyFrom(src *Field) {
	if f.cfg.Rows != src.cfg.Rows || f.cfg.Cols != src.cfg.Cols {
		panic("field: CopyFrom between fields of different size")
	}
	copy(f.cells, src.cells)
}

// Equal reports whether both fields have the same size and contents.
func (f *Field) Equal(other *Field) bool {
	if other == nil {
		return false
	}
	return f.cfg == other.cfg && slices.Equal(f.cells, other.cells)
}

// Reset sets every cell back to Empty.
func (f *Field) Reset() {
	clear(f.cells)
}

func (f *Field) index(row, col int) int {
	return row*f.cfg.Cols + col
}
