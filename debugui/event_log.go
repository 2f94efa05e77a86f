package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/play"
)

// EventLogWindow lists recent kernel notifications, newest last.
type EventLogWindow struct {
	hideMoves bool
}

func NewEventLogWindow() *EventLogWindow {
	return &EventLogWindow{}
}

func (w *EventLogWindow) Render(session *play.Session, _ float32) {
	if !imgui.BeginV("Event Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	log := session.Log
	imgui.Text(fmt.Sprintf("%d events, showing %d", log.Total(), log.Len()))
	imgui.SameLine()
	if imgui.Button("Clear") {
		log.Clear()
	}
	imgui.Checkbox("Hide moves", &w.hideMoves)
	imgui.Separator()

	for _, e := range log.Entries() {
		if w.hideMoves && strings.HasPrefix(e.Text, "move ") {
			continue
		}
		imgui.Text(fmt.Sprintf("%5d  %s", e.Seq, e.Text))
	}

	imgui.End()
}
