package field_test

import (
	"testing"

	"github.com/plus3/blockfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// place writes rows (top row first) as Falling cells with the top-left
// corner at top, left.
func place(t *testing.T, f *field.Field, top, left int, rows ...string) {
	t.Helper()
	for r, line := range rows {
		for c, ch := range line {
			if ch == 'o' {
				require.True(t, f.InBounds(top-r, left+c))
				f.Set(top-r, left+c, field.Falling)
			}
		}
	}
}

func TestRotate(t *testing.T) {
	t.Run("square piece never rotates", func(t *testing.T) {
		f := field.New()
		place(t, f, 6, 4, "oo", "oo")
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})

	t.Run("I piece turns vertical", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 3, "oooo")

		assert.True(t, f.Rotate())

		assert.Equal(t, 4, f.Count(field.Falling))
		for row := 7; row <= 10; row++ {
			assert.Equal(t, field.Falling, f.Get(row, 3), "row %d", row)
		}
	})

	t.Run("I piece turns back horizontal", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 3, "o", "o", "o", "o")

		assert.True(t, f.Rotate())

		for col := 3; col <= 6; col++ {
			assert.Equal(t, field.Falling, f.Get(10, col), "col %d", col)
		}
		assert.Equal(t, 4, f.Count(field.Falling))
	})

	t.Run("T piece", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 2, ".o.", "ooo")
		want := field.New()
		place(t, want, 10, 2, ".o", "oo", ".o")

		assert.True(t, f.Rotate())
		assert.True(t, want.Equal(f), "got\n%s", f)
	})

	t.Run("L piece cycles back after four turns", func(t *testing.T) {
		f := field.New()
		place(t, f, 12, 4, "o.", "o.", "oo")
		start := f.Clone()

		for range 4 {
			require.True(t, f.Rotate())
			assert.Equal(t, 4, f.Count(field.Falling))
		}
		assert.True(t, start.Equal(f), "got\n%s", f)
	})

	t.Run("solid content is preserved", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 3, "oooo")
		f.Set(0, 0, field.Solid)
		f.Set(10, 8, field.Solid)
		f.Set(2, 5, field.Marked)

		assert.True(t, f.Rotate())

		assert.Equal(t, field.Solid, f.Get(0, 0))
		assert.Equal(t, field.Solid, f.Get(10, 8))
		assert.Equal(t, field.Marked, f.Get(2, 5))
		assert.Equal(t, 2, f.Count(field.Solid))
	})

	t.Run("blocked by solid", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 3, "oooo")
		f.Set(8, 3, field.Solid)
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})

	t.Run("blocked by marked row", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 3, "oooo")
		for col := range f.Cols() {
			f.Set(8, col, field.Marked)
		}
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})

	t.Run("blocked by floor", func(t *testing.T) {
		f := field.New()
		place(t, f, 1, 3, "oooo")
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})

	t.Run("blocked by right wall", func(t *testing.T) {
		f := field.New()
		place(t, f, 10, 9, "o", "o", "o", "o")
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))

		// Rejection is stable.
		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})

	t.Run("top row of the grid", func(t *testing.T) {
		f := field.New()
		place(t, f, 23, 3, "oooo")
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})

	t.Run("one below the top row", func(t *testing.T) {
		f := field.New()
		place(t, f, 22, 3, "ooo", ".o.")

		assert.True(t, f.Rotate())
		assert.Equal(t, 4, f.Count(field.Falling))
	})

	t.Run("no piece", func(t *testing.T) {
		f := field.MustParse(`
			#.#.......
		`)
		before := f.Clone()

		assert.False(t, f.Rotate())
		assert.True(t, before.Equal(f))
	})
}
