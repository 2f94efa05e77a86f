package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

const (
	cellSize   = 28
	margin     = 24
	panelWidth = 7 * cellSize
)

// screenSize returns the window size for a board of cols by rows visible cells.
func screenSize(cols, rows int) (int, int) {
	return margin*3 + cols*cellSize + panelWidth, margin*2 + rows*cellSize
}

// renderer draws the session onto an ebiten image. Board coordinates are in
// visible rows; hidden rows are never drawn.
type renderer struct {
	session *play.Session
	effects *effects
}

func (r *renderer) draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	game := r.session.Game
	grid := game.Grid()
	hidden := grid.HiddenRows()

	w, h := float32(grid.Cols()*cellSize), float32(grid.VisibleRows()*cellSize)
	vector.DrawFilledRect(screen, margin, margin, w, h, boardColor, false)
	for x := 1; x < grid.Cols(); x++ {
		fx := float32(margin + x*cellSize)
		vector.StrokeLine(screen, fx, margin, fx, margin+h, 1, gridLineColor, false)
	}
	for y := 1; y < grid.VisibleRows(); y++ {
		fy := float32(margin + y*cellSize)
		vector.StrokeLine(screen, margin, fy, margin+w, fy, 1, gridLineColor, false)
	}

	for y := hidden; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			if c, ok := cellColor(grid.At(x, y)); ok {
				r.cell(screen, float32(x), float32(y-hidden), c)
			}
		}
	}

	r.drawEffects(screen, hidden)

	if piece, ok := game.Piece(); ok {
		c := kindColors[piece.Kind]

		ghost := piece
		ghost.Y = game.DropPosition()
		if ghost.Y != piece.Y {
			r.outline(screen, ghost, hidden, withAlpha(c, 0.5))
		}

		offset := r.session.Offset()
		for _, p := range piece.Cells() {
			if p.Y >= hidden {
				r.cell(screen, float32(p.X), float32(p.Y-hidden)+offset, c)
			}
		}
	}

	vector.StrokeRect(screen, margin, margin, w, h, 2, gridLineColor, false)
	r.drawPanel(screen, margin*2+int(w))
}

func (r *renderer) drawEffects(screen *ebiten.Image, hidden int) {
	e := r.effects
	if e.trailTween != nil {
		c := withAlpha(kindColors[e.trail.Kind], e.trailAlpha)
		top := e.trail.Y - e.distance
		for _, p := range e.trail.Cells() {
			from := max(top+p.Y-e.trail.Y, hidden)
			if from >= p.Y {
				continue
			}
			x := float32(margin + p.X*cellSize)
			y := float32(margin + (from-hidden)*cellSize)
			vector.DrawFilledRect(screen, x+cellSize/4, y, cellSize/2, float32((p.Y-from)*cellSize), c, false)
		}
	}

	if e.flash != nil {
		// Rows collapse as soon as they clear, so the flash covers the
		// bottom rows of the collapsed span.
		c := withAlpha(color.RGBA{255, 255, 255, 255}, e.glow*0.8)
		grid := r.session.Game.Grid()
		for _, y := range e.rows {
			if y < hidden {
				continue
			}
			vector.DrawFilledRect(screen, margin, float32(margin+(y-hidden)*cellSize),
				float32(grid.Cols()*cellSize), cellSize, c, false)
		}
	}
}

func (r *renderer) drawPanel(screen *ebiten.Image, left int) {
	game := r.session.Game
	vector.DrawFilledRect(screen, float32(left), margin, panelWidth, float32(screen.Bounds().Dy()-2*margin), textPanelColor, false)

	ebitenutil.DebugPrintAt(screen, "NEXT", left+8, margin+8)
	y := margin + 28
	for _, k := range game.Preview() {
		shape := k.Shape()
		for p := range shape.Cells() {
			px := float32(left + 16 + p.X*cellSize/2)
			py := float32(y + p.Y*cellSize/2)
			vector.DrawFilledRect(screen, px+1, py+1, cellSize/2-2, cellSize/2-2, kindColors[k], false)
		}
		y += (shape.Size() + 1) * cellSize / 2
	}

	y += 8
	lines := []string{
		fmt.Sprintf("SCORE  %d", game.Score()),
		fmt.Sprintf("LINES  %d", game.Lines()),
		fmt.Sprintf("PIECES %d", game.Spawned()),
		"",
		status(r.session),
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, left+8, y)
		y += 16
	}

	ebitenutil.DebugPrintAt(screen, "ENTER start  BKSP stop\nP pause  SPACE drop\nUP/X rotate  ESC quit", left+8, screen.Bounds().Dy()-margin-52)
}

func status(session *play.Session) string {
	switch {
	case session.Paused():
		return "PAUSED"
	case session.Game.State() == tetris.StateGameOver:
		return "GAME OVER"
	case session.Game.State() == tetris.StateEmpty:
		return "PRESS ENTER"
	default:
		return ""
	}
}

func (r *renderer) cell(screen *ebiten.Image, x, y float32, c color.RGBA) {
	px, py := margin+x*cellSize, margin+y*cellSize
	vector.DrawFilledRect(screen, px+1, py+1, cellSize-2, cellSize-2, c, false)
	vector.DrawFilledRect(screen, px+1, py+1, cellSize-2, 3, withAlpha(color.RGBA{255, 255, 255, 255}, 0.3), false)
}

func (r *renderer) outline(screen *ebiten.Image, piece tetris.Piece, hidden int, c color.RGBA) {
	for _, p := range piece.Cells() {
		if p.Y < hidden {
			continue
		}
		px, py := float32(margin+p.X*cellSize), float32(margin+(p.Y-hidden)*cellSize)
		vector.StrokeRect(screen, px+2, py+2, cellSize-4, cellSize-4, 2, c, false)
	}
}
