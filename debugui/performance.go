package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/session"
)

// StatsSource is implemented by *session.Session.
type StatsSource interface {
	Stats() *session.Stats
	Interval() time.Duration
}

// StatsWindow shows frame timings and per-command execution statistics.
type StatsWindow struct {
	source  StatsSource
	history *frameHistory
}

func NewStatsWindow(source StatsSource, historyFrames int) *StatsWindow {
	return &StatsWindow{
		source:  source,
		history: newFrameHistory(historyFrames),
	}
}

func (w *StatsWindow) Render(deltaTime float32) {
	w.history.push(deltaTime * 1000.0)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)
	if !imgui.BeginV("Session Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.source.Stats()

	avg := w.history.average()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps(avg)))
	imgui.Text(fmt.Sprintf("Tick Interval: %s", w.source.Interval()))
	imgui.Text(fmt.Sprintf("Commands Executed: %d", stats.TotalExecutions))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.history.samples[0], int32(len(w.history.samples)))

	if imgui.TreeNodeStr("Command Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("CommandStatsTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Command")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Applied")
			imgui.TableSetupColumn("Blocked")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, cs := range stats.Commands {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(cs.Command.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", cs.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d (%.0f pct)", cs.Applied, appliedPercent(cs)))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", cs.Blocked))
				imgui.TableNextColumn()
				imgui.Text(formatMicros(cs.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatMicros(cs.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type frameHistory struct {
	samples []float32
	index   int
	filled  int
}

func newFrameHistory(n int) *frameHistory {
	return &frameHistory{samples: make([]float32, max(n, 1))}
}

func (h *frameHistory) push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// average ignores slots that have not been written yet.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples {
		sum += s
	}
	return sum / float32(h.filled)
}

func fps(avgMillis float32) float32 {
	if avgMillis <= 0 {
		return 0
	}
	return 1000.0 / avgMillis
}

func appliedPercent(cs session.CommandStats) float64 {
	if cs.ExecutionCount == 0 {
		return 0
	}
	return float64(cs.Applied) / float64(cs.ExecutionCount) * 100
}

func formatMicros(d time.Duration) string {
	return fmt.Sprintf("%.1f us", float64(d)/float64(time.Microsecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
