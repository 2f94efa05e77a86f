package tetris

import (
	"iter"
	"strings"
)

// Point is a cell offset inside a shape: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Shape is a square binary matrix indexed [row][column].
type Shape [][]bool

// ParseShape builds a shape from one string per row; '#' marks a filled cell
// and any other byte an empty one. Short rows are padded so the result is
// square with side equal to the larger of the row count and longest row.
func ParseShape(rows ...string) Shape {
	size := len(rows)
	for _, r := range rows {
		size = max(size, len(r))
	}

	shape := newShape(size)
	for i, r := range rows {
		for j := 0; j < len(r); j++ {
			shape[i][j] = r[j] == '#'
		}
	}
	return shape
}

func newShape(size int) Shape {
	shape := make(Shape, size)
	for i := range shape {
		shape[i] = make([]bool, size)
	}
	return shape
}

// Size returns the side length of the matrix.
func (s Shape) Size() int { return len(s) }

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := newShape(len(s))
	for i := range s {
		copy(out[i], s[i])
	}
	return out
}

// Rotate returns the shape turned by a quarter. Right turns clockwise
// (new[j][n-1-i] = old[i][j]), Left counter-clockwise (new[n-1-j][i] = old[i][j]).
// It panics if the shape is not square.
func (s Shape) Rotate(dir Direction) Shape {
	size := len(s)
	rotated := newShape(size)

	for i := range size {
		if len(s[i]) != size {
			panic("tetris: cannot rotate a non-square shape")
		}
		for j := range size {
			if dir == Right {
				rotated[j][size-1-i] = s[i][j]
			} else {
				rotated[size-1-j][i] = s[i][j]
			}
		}
	}
	return rotated
}

// Cells yields the offsets of the filled cells in row-major order.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i, row := range s {
			for j, filled := range row {
				if filled && !yield(Point{X: j, Y: i}) {
					return
				}
			}
		}
	}
}

// Count returns the number of filled cells.
func (s Shape) Count() int {
	n := 0
	for range s.Cells() {
		n++
	}
	return n
}

// Equal reports whether both shapes have the same size and filled cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the shape in the ParseShape format, rows separated by '\n'.
func (s Shape) String() string {
	rows := make([]string, len(s))
	for i, row := range s {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}
