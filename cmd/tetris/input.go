package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/play"
)

// Auto-repeat for held horizontal keys, in ticks.
const (
	repeatDelay = 12
	repeatRate  = 3
)

// keyboard is the slice of inpututil the key mapping needs.
type keyboard interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
	// Duration returns for how many ticks key has been held, 0 if released.
	Duration(key ebiten.Key) int
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeyboard) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }
func (ebitenKeyboard) Duration(key ebiten.Key) int      { return inpututil.KeyPressDuration(key) }

var pressIntents = []struct {
	key    ebiten.Key
	intent play.Intent
}{
	{ebiten.KeyUp, play.IntentRotateCCW},
	{ebiten.KeyX, play.IntentRotateCW},
	{ebiten.KeyDown, play.IntentSoftDropStart},
	{ebiten.KeySpace, play.IntentHardDrop},
	{ebiten.KeyP, play.IntentTogglePause},
	{ebiten.KeyEnter, play.IntentStart},
	{ebiten.KeyBackspace, play.IntentStop},
}

// readIntents maps this tick's key events to intents.
func readIntents(kb keyboard, push func(play.Intent)) {
	repeat(kb, ebiten.KeyLeft, play.IntentLeft, push)
	repeat(kb, ebiten.KeyRight, play.IntentRight, push)

	for _, m := range pressIntents {
		if kb.JustPressed(m.key) {
			push(m.intent)
		}
	}

	if kb.JustReleased(ebiten.KeyDown) {
		push(play.IntentSoftDropStop)
	}
}

func repeat(kb keyboard, key ebiten.Key, intent play.Intent, push func(play.Intent)) {
	if kb.JustPressed(key) {
		push(intent)
		return
	}
	d := kb.Duration(key)
	if d >= repeatDelay && (d-repeatDelay)%repeatRate == 0 {
		push(intent)
	}
}
