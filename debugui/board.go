package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

const cellSize = 12

var kindColors = [tetris.KindCount]imgui.Vec4{
	tetris.KindI: imgui.NewVec4(0.0, 0.9, 0.9, 1),
	tetris.KindO: imgui.NewVec4(0.9, 0.9, 0.0, 1),
	tetris.KindT: imgui.NewVec4(0.7, 0.2, 0.9, 1),
	tetris.KindS: imgui.NewVec4(0.2, 0.9, 0.2, 1),
	tetris.KindZ: imgui.NewVec4(0.9, 0.2, 0.2, 1),
	tetris.KindJ: imgui.NewVec4(0.2, 0.3, 0.9, 1),
	tetris.KindL: imgui.NewVec4(0.9, 0.5, 0.1, 1),
}

// BoardInspector shows the grid, the active piece and the round controls.
type BoardInspector struct {
	cols, rows int32
	resizeErr  error
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{
		cols: tetris.DefaultCols,
		rows: tetris.DefaultRows,
	}
}

func (b *BoardInspector) Render(session *play.Session, _ float32) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := session.Game
	imgui.Text(fmt.Sprintf("State: %s", game.State()))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Pieces: %d", game.Score(), game.Lines(), game.Spawned()))
	imgui.Text(fmt.Sprintf("Elapsed: %.1fs", session.Elapsed()))

	if imgui.Button("Start") {
		session.Push(play.IntentStart)
	}
	imgui.SameLine()
	if imgui.Button("Stop") {
		session.Push(play.IntentStop)
	}
	imgui.SameLine()
	paused := session.Paused()
	if imgui.Checkbox("Paused", &paused) {
		session.SetPaused(paused)
	}

	imgui.Separator()

	if p, ok := game.Piece(); ok {
		imgui.Text(fmt.Sprintf("Piece: %s at %d,%d rotation %d", p.Kind, p.X, p.Y, p.Rotation))
		imgui.Text(fmt.Sprintf("Drop row: %d  Descending: %v (%.2f)", game.DropPosition(), session.Descending(), session.Offset()))
	} else {
		imgui.Text("Piece: none")
	}
	for i, k := range game.Preview() {
		imgui.BulletText(fmt.Sprintf("Next %d: %s", i+1, k))
	}
	if landing := session.LastLanding(); landing != nil {
		imgui.Text(fmt.Sprintf("Last landing: %s at row %d, %d rows, %d points",
			landing.Piece.Kind, landing.Piece.Y, landing.Cleared(), landing.Points))
	}
	if game.State() == tetris.StateLineClear {
		imgui.Text(fmt.Sprintf("Clearing: %.0f%%", session.ClearProgress()*100))
	}

	if imgui.TreeNodeStr("Grid") {
		b.drawGrid(game)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resize") {
		imgui.SetNextItemWidth(100)
		imgui.InputInt("Columns", &b.cols)
		imgui.SetNextItemWidth(100)
		imgui.InputInt("Rows", &b.rows)
		if imgui.Button("Apply") {
			b.resizeErr = session.Resize(int(b.cols), int(b.rows))
		}
		if b.resizeErr != nil {
			imgui.Text(b.resizeErr.Error())
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (b *BoardInspector) drawGrid(game *tetris.Game) {
	grid := game.Grid()
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	cell := func(x, y int, c imgui.Vec4) {
		minX := origin.X + float32(x*cellSize)
		minY := origin.Y + float32(y*cellSize)
		drawList.AddRectFilled(
			imgui.NewVec2(minX, minY),
			imgui.NewVec2(minX+cellSize-1, minY+cellSize-1),
			imgui.ColorU32Vec4(c),
		)
	}

	background := imgui.NewVec4(0.15, 0.15, 0.15, 1)
	hidden := imgui.NewVec4(0.1, 0.1, 0.1, 1)
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			color := background
			if y < grid.HiddenRows() {
				color = hidden
			}
			if k, ok := tetris.KindOf(grid.At(x, y)); ok {
				color = kindColors[k]
			}
			cell(x, y, color)
		}
	}

	if p, ok := game.Piece(); ok {
		ghost := kindColors[p.Kind]
		ghost.W = 0.3
		dy := game.DropPosition() - p.Y
		for _, c := range p.Cells() {
			cell(c.X, c.Y+dy, ghost)
		}
		for _, c := range p.Cells() {
			if c.Y >= 0 {
				cell(c.X, c.Y, kindColors[p.Kind])
			}
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(grid.Cols()*cellSize), float32(grid.Rows()*cellSize)))
}
