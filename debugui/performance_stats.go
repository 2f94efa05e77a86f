package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

// StatsSource provides scheduler statistics.
type StatsSource interface {
	GetStats() *loop.SchedulerStats
}

// PerformanceStats plots frame times and lists per-system timings and
// gameplay counters.
type PerformanceStats struct {
	scheduler     StatsSource
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(scheduler StatsSource, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStats) Render(session *play.Session, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if ps.scheduler != nil && imgui.TreeNodeStr("Systems") {
		stats := ps.scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d  Executions: %d", stats.Frames, stats.TotalExecutions))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Gameplay") {
		counters := session.Stats
		imgui.Text(fmt.Sprintf("Pieces: %d  Lines: %d  Game overs: %d", counters.Pieces(), counters.Lines(), counters.GameOvers()))
		imgui.Text(fmt.Sprintf("Moves: %d  Rotations: %d  Rejected: %d", counters.Moves(), counters.Rotations(), counters.InvalidMoves()))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawns")
			imgui.TableHeadersRow()
			for _, k := range tetris.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(k.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", counters.Spawns(k)))
			}
			imgui.EndTable()
		}

		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d-row clears: %d", rows, counters.Clears(rows)))
		}

		if imgui.Button("Reset Counters") {
			counters.Reset()
		}
		imgui.TreePop()
	}

	imgui.End()
}
