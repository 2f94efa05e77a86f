package tetris

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct kinds.
const KindCount = 7

// Kinds lists every kind in declaration order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// I and O are even-sized so they spawn centered; the 3x3 kinds spawn one
// column left of center.
var kindShapes = [KindCount][]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindO: {
		"##",
		"##",
	},
	KindT: {
		".#.",
		"###",
		"...",
	},
	KindS: {
		".##",
		"##.",
		"...",
	},
	KindZ: {
		"##.",
		".##",
		"...",
	},
	KindJ: {
		"#..",
		"###",
		"...",
	},
	KindL: {
		"..#",
		"###",
		"...",
	},
}

// Shape returns a fresh copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	return ParseShape(kindShapes[k]...)
}

// Color returns the cell color used for blocks of this kind.
func (k Kind) Color() Color {
	return Color(k) + 1
}

// KindOf maps a non-empty cell color back to its kind.
func KindOf(c Color) (Kind, bool) {
	if c == Empty || int(c) > KindCount {
		return 0, false
	}
	return Kind(c - 1), true
}
