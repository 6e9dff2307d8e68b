// Package piece defines the seven tetrominoes and places them into a
// field's spawn area.
package piece

import (
	"strings"

	"github.com/plus3/blockfield/field"
)

// Kind identifies a tetromino.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every tetromino in declaration order.
var Kinds = []Kind{I, O, T, S, Z, J, L}

var figures = [...][]string{
	I: {"####"},
	O: {"##", "##"},
	T: {" # ", "###"},
	S: {" ##", "## "},
	Z: {"## ", " ##"},
	J: {"#  ", "###"},
	L: {"  #", "###"},
}

var names = [...]string{I: "I", O: "O", T: "T", S: "S", Z: "Z", J: "J", L: "L"}

var shapes = func() [][][]bool {
	out := make([][][]bool, len(figures))
	for k, fig := range figures {
		out[k] = parseFigure(fig)
	}
	return out
}()

func parseFigure(lines []string) [][]bool {
	shape := make([][]bool, len(lines))
	for r, line := range lines {
		shape[r] = make([]bool, len(line))
		for c := range line {
			shape[r][c] = line[c] == '#'
		}
	}
	return shape
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Valid reports whether k names one of the seven tetrominoes.
func (k Kind) Valid() bool {
	return int(k) < len(figures)
}

// Shape returns the figure of k with the top row first. The result is a
// fresh copy.
func Shape(k Kind) [][]bool {
	src := shapes[k]
	out := make([][]bool, len(src))
	for i, row := range src {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Width returns the number of columns the unrotated figure spans.
func Width(k Kind) int {
	return len(shapes[k][0])
}

// Figure renders the shape of k with '#' for blocks, one line per row.
func Figure(k Kind) string {
	return strings.Join(figures[k], "\n")
}

// Spawn writes k as Falling cells with its top row on the top row of f,
// horizontally centered. It reports false without touching f when any
// target square is already occupied, which ends the game for the caller.
func Spawn(f *field.Field, k Kind) bool {
	shape := shapes[k]
	top := f.Rows() - 1
	left := (f.Cols() - len(shape[0])) / 2

	for r, line := range shape {
		for c, set := range line {
			if !set {
				continue
			}
			row, col := top-r, left+c
			if !f.InBounds(row, col) || f.Get(row, col) != field.Empty {
				return false
			}
		}
	}

	for r, line := range shape {
		for c, set := range line {
			if set {
				f.Set(top-r, left+c, field.Falling)
			}
		}
	}
	return true
}
