package field_test

import (
	"testing"

	"github.com/plus3/blockfield/field"
)

func newBenchField() *field.Field {
	f := field.New()
	for row := range 8 {
		for col := range f.Cols() {
			if (row+col)%3 != 0 {
				f.Set(row, col, field.Solid)
			}
		}
	}
	f.Set(20, 3, field.Falling)
	f.Set(20, 4, field.Falling)
	f.Set(20, 5, field.Falling)
	f.Set(19, 4, field.Falling)
	return f
}

func BenchmarkAdvance(b *testing.B) {
	base := newBenchField()
	f := base.Clone()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if f.Advance().Landed {
			f.CopyFrom(base)
		}
	}
}

func BenchmarkMove(b *testing.B) {
	f := newBenchField()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !f.MoveRight() {
			for f.MoveLeft() {
			}
		}
	}
}

func BenchmarkRotate(b *testing.B) {
	f := newBenchField()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Rotate()
	}
}

func BenchmarkClearMarkedLines(b *testing.B) {
	base := field.New()
	for row := range 4 {
		for col := range base.Cols() {
			base.Set(row*2, col, field.Marked)
			base.Set(row*2+1, col%4, field.Solid)
		}
	}
	f := base.Clone()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.CopyFrom(base)
		f.ClearMarkedLines()
	}
}

func BenchmarkObserverChanges(b *testing.B) {
	f := newBenchField()
	obs := field.NewObserver(f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Rotate()
		obs.Changes()
	}
}
