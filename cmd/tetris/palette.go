package main

import (
	"image/color"

	"github.com/plus3/tetris/tetris"
)

var kindColors = [tetris.KindCount]color.RGBA{
	tetris.KindI: {0, 240, 240, 255},
	tetris.KindO: {240, 240, 0, 255},
	tetris.KindT: {160, 0, 240, 255},
	tetris.KindS: {0, 240, 0, 255},
	tetris.KindZ: {240, 0, 0, 255},
	tetris.KindJ: {0, 0, 240, 255},
	tetris.KindL: {240, 160, 0, 255},
}

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	boardColor      = color.RGBA{32, 32, 40, 255}
	gridLineColor   = color.RGBA{48, 48, 58, 255}
	textPanelColor  = color.RGBA{24, 24, 30, 255}
)

// cellColor returns the fill for a grid color, or false for an empty cell.
func cellColor(c tetris.Color) (color.RGBA, bool) {
	k, ok := tetris.KindOf(c)
	if !ok {
		return color.RGBA{}, false
	}
	return kindColors[k], true
}

// withAlpha scales a color's alpha by a in [0, 1]. Colors are premultiplied,
// so every channel is scaled.
func withAlpha(c color.RGBA, a float32) color.RGBA {
	a = min(max(a, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
