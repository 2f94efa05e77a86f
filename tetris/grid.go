package tetris

import "strings"

// Color identifies what occupies a grid cell. The zero value is an empty cell.
type Color uint8

// Empty is the color of an unoccupied cell.
const Empty Color = 0

// Grid is a fixed-size occupancy grid. Rows are numbered from the top, and
// the first HiddenRows rows sit above the visible play area as spawn headroom.
type Grid struct {
	cols   int
	rows   int
	hidden int
	cells  []Color
}

// NewGrid creates an empty grid of cols columns and visible+hidden rows.
// Dimensions are not validated here; Config.Validate guards game construction.
func NewGrid(cols, visible, hidden int) *Grid {
	rows := visible + hidden
	return &Grid{
		cols:   cols,
		rows:   rows,
		hidden: hidden,
		cells:  make([]Color, cols*rows),
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the total number of rows, hidden rows included.
func (g *Grid) Rows() int { return g.rows }

// HiddenRows returns the number of buffer rows above the visible area.
func (g *Grid) HiddenRows() int { return g.hidden }

// VisibleRows returns the number of rows in the play area.
func (g *Grid) VisibleRows() int { return g.rows - g.hidden }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the color at (x, y). Out of bounds cells read as Empty.
func (g *Grid) At(x, y int) Color {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.cols+x]
}

// Occupied reports whether (x, y) holds a placed block.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y) != Empty
}

// Set writes a color to (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, c Color) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.cols+x] = c
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		cols:   g.cols,
		rows:   g.rows,
		hidden: g.hidden,
		cells:  cells,
	}
}

// Intersects reports whether shape placed with its top-left corner at (x, y)
// would collide. A filled cell collides when it lies left or right of the
// grid, below the bottom row, or on an occupied cell. Rows above the grid are
// open space.
func (g *Grid) Intersects(shape Shape, x, y int) bool {
	for i, row := range shape {
		for j, filled := range row {
			if !filled {
				continue
			}

			cx := x + j
			cy := y + i

			if cx < 0 || cx >= g.cols || cy >= g.rows {
				return true
			}

			if cy >= 0 && g.cells[cy*g.cols+cx] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge writes the filled cells of p into the grid with the piece's color.
// Cells that fall outside the grid are skipped.
func (g *Grid) Merge(p Piece) {
	for cell := range p.Shape.Cells() {
		g.Set(p.X+cell.X, p.Y+cell.Y, p.Color)
	}
}

// RowComplete reports whether every column of row y is occupied.
func (g *Grid) RowComplete(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.row(y) {
		if c == Empty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y has no occupied cells.
func (g *Grid) RowEmpty(y int) bool {
	if y < 0 || y >= g.rows {
		return true
	}
	for _, c := range g.row(y) {
		if c != Empty {
			return false
		}
	}
	return true
}

// ClearRows removes the complete rows between top and bottom (inclusive,
// clamped to the grid) and collapses everything above them. Rows are scanned
// from bottom upwards; each surviving row above a cleared one moves down by
// the number of cleared rows beneath it, and the vacated rows at the top are
// emptied. The returned indexes are the cleared rows as they were numbered
// before the collapse, bottom first.
func (g *Grid) ClearRows(top, bottom int) []int {
	if bottom >= g.rows {
		bottom = g.rows - 1
	}
	if top < 0 {
		top = 0
	}

	var cleared []int
	fall := 0
	for y := bottom; y >= 0; y-- {
		if y >= top && g.RowComplete(y) {
			cleared = append(cleared, y)
			fall++
			continue
		}
		if fall > 0 {
			copy(g.row(y+fall), g.row(y))
		}
	}

	for y := 0; y < fall; y++ {
		clear(g.row(y))
	}
	return cleared
}

// Height returns the number of rows from the highest occupied cell of column
// x down to the floor, or 0 when the column is empty.
func (g *Grid) Height(x int) int {
	for y := 0; y < g.rows; y++ {
		if g.Occupied(x, y) {
			return g.rows - y
		}
	}
	return 0
}

// String renders the grid one row per line, '.' for empty cells and the
// color digit for occupied ones. A '-' separator marks the hidden rows.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		if y == g.hidden && g.hidden > 0 {
			b.WriteString(strings.Repeat("-", g.cols))
			b.WriteByte('\n')
		}
		for _, c := range g.row(y) {
			if c == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + byte(c%10))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) row(y int) []Color {
	return g.cells[y*g.cols : (y+1)*g.cols]
}
