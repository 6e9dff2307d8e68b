package field

import (
	"errors"
	"fmt"
	"strings"
)

var ErrParse = errors.New("field: parse error")

var cellRunes = [...]byte{
	Empty:   '.',
	Falling: 'o',
	Solid:   '#',
	Marked:  '=',
}

func cellFromRune(r rune) (Cell, bool) {
	for c, b := range cellRunes {
		if rune(b) == r {
			return Cell(c), true
		}
	}
	return Empty, false
}

// String renders the grid one line per row, top row first, using '.' for
// Empty, 'o' for Falling, '#' for Solid and '=' for Marked.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow(f.cfg.Rows * (f.cfg.Cols + 1))
	for row := f.cfg.Rows - 1; row >= 0; row-- {
		for col := range f.cfg.Cols {
			c := f.Get(row, col)
			if c.Valid() {
				sb.WriteByte(cellRunes[c])
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a grid in the format produced by String. Blank lines and
// surrounding whitespace are ignored.
//
// Input with the default column count and no more than the default number
// of rows is bottom-aligned onto a default field, so tests and tools can
// describe just the lower part of the board. Any other shape defines the
// field size itself.
func Parse(s string) (*Field, error) {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrParse, i+1, len(line), cols)
		}
	}

	cfg := DefaultConfig()
	if cols != DefaultCols || len(lines) > DefaultRows {
		cfg = Config{Rows: len(lines), Cols: cols}
		if cfg.Rows > DefaultSpawnBuffer {
			cfg.SpawnBuffer = DefaultSpawnBuffer
		}
	}

	f, err := NewWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	for i, line := range lines {
		row := len(lines) - 1 - i
		for col, r := range line {
			c, ok := cellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: unknown cell %q", ErrParse, i+1, r)
			}
			f.Set(row, col, c)
		}
	}
	return f, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Field {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}
