package tetris

// Direction is a horizontal direction. For rotation, Right turns clockwise
// and Left counter-clockwise.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Piece is the falling tetromino: a shape anchored at its top-left corner.
type Piece struct {
	Kind     Kind
	Shape    Shape
	X, Y     int
	Rotation int
	Color    Color
}

// NewPiece returns a piece of kind k in spawn orientation at (x, y).
func NewPiece(k Kind, x, y int) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Shape(),
		X:     x,
		Y:     y,
		Color: k.Color(),
	}
}

// Cells returns the absolute grid coordinates of the piece's blocks.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for c := range p.Shape.Cells() {
		cells = append(cells, Point{X: p.X + c.X, Y: p.Y + c.Y})
	}
	return cells
}

// Bottom returns the row index of the bottom edge of the piece's matrix.
func (p Piece) Bottom() int {
	return p.Y + p.Shape.Size() - 1
}

func (p Piece) rotated(dir Direction) Piece {
	p.Shape = p.Shape.Rotate(dir)
	p.Rotation = (p.Rotation + int(dir) + 4) % 4
	return p
}
