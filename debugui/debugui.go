// Package debugui renders Dear ImGui inspector windows for a running
// play.Session: the board and round controls, scheduler and gameplay
// statistics, and the kernel event log.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
)

// Window is an inspector panel drawn once per frame.
type Window interface {
	Render(session *play.Session, deltaTime float32)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Drivers check it before turning keys into intents.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates InputState and queues every window's render function.
// Rendering is deferred so the windows show the state after all systems of
// the frame have run.
type ImguiSystem struct {
	Windows []Window
	Input   InputState
}

// New returns an ImguiSystem with the board, performance and event log
// windows. Scheduler statistics are read from scheduler.
func New(scheduler *loop.Scheduler[play.Session]) *ImguiSystem {
	return &ImguiSystem{
		Windows: []Window{
			NewBoardInspector(),
			NewPerformanceStats(scheduler, 120),
			NewEventLogWindow(),
		},
	}
}

// Execute updates input state and queues all window render functions.
func (i *ImguiSystem) Execute(frame *loop.Frame[play.Session]) {
	i.Input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	dt := float32(frame.DeltaTime)
	for _, w := range i.Windows {
		frame.Commands.Defer(func() {
			w.Render(frame.State, dt)
		})
	}
}
