package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
)

// Game adapts a play.Session to ebiten. Every Update advances the scheduler
// by one tick.
type Game struct {
	Session   *play.Session
	Scheduler *loop.Scheduler[play.Session]

	// Debug overlay, nil unless -debug is set.
	UI    *debugui.ImguiSystem
	Imgui *debugui_ebiten.ImguiBackend

	keys     keyboard
	effects  effects
	renderer renderer
}

func NewGame(session *play.Session, scheduler *loop.Scheduler[play.Session]) *Game {
	g := &Game{
		Session:   session,
		Scheduler: scheduler,
		keys:      ebitenKeyboard{},
	}
	g.renderer = renderer{session: session, effects: &g.effects}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.UI == nil || !g.UI.Input.WantCaptureKeyboard {
		readIntents(g.keys, g.Session.Push)
	}

	dt := 1.0 / float64(ebiten.TPS())
	step := func() { g.Scheduler.Once(dt) }
	if g.Imgui != nil {
		g.Imgui.Frame(step)
	} else {
		step()
	}

	g.effects.update(g.Session, float32(dt))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen)
	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
