package field_test

import (
	"fmt"

	"github.com/plus3/blockfield/field"
)

// ExampleField_Advance drops a single block onto an almost complete row and
// clears it.
func ExampleField_Advance() {
	f := field.MustParse(`
		.....o....
		.....o....
		#####.####
	`)

	for {
		res := f.Advance()
		if res.Landed {
			fmt.Printf("landed on row %d, lines to clear: %v\n", res.LandedRow, res.HasLinesToClear)
			break
		}
	}
	fmt.Println("cleared:", f.ClearMarkedLines())
	fmt.Println("solid cells left:", f.Count(field.Solid))

	// Output:
	// landed on row 0, lines to clear: true
	// cleared: 1
	// solid cells left: 1
}

// ExampleField_Rotate shows the bounding-box rotation of an I piece.
func ExampleField_Rotate() {
	f, _ := field.NewWithConfig(field.Config{Rows: 6, Cols: 6})
	for col := 1; col <= 4; col++ {
		f.Set(4, col, field.Falling)
	}

	fmt.Println(f.Rotate())
	fmt.Print(f)

	// Output:
	// true
	// ......
	// .o....
	// .o....
	// .o....
	// .o....
	// ......
}

func ExampleField_MoveLeft() {
	f := field.MustParse(`
		.oo.......
		#oo.......
	`)

	fmt.Println(f.MoveRight())
	fmt.Println(f.MoveLeft())
	fmt.Println(f.MoveLeft())

	// Output:
	// true
	// true
	// false
}
