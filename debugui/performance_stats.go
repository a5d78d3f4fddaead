package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// PerformanceStats plots frontend frame times and tabulates the scheduler's per-system
// timings from the latest view.
type PerformanceStats struct {
	views         ViewSource
	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(views ViewSource, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		views:         views,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Item wraps the window for an Overlay.
func (ps *PerformanceStats) Item() ImguiItem {
	return ImguiItem{Render: ps.Render}
}

func (ps *PerformanceStats) Render() {
	ps.frameHistory[ps.frameIndex] = ps.timer.GetDeltaTime() * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	imgui.SetNextWindowPosV(imgui.NewVec2(330, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	view, ok := ps.views()
	if !ok || view.Stats == nil {
		imgui.End()
		return
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", view.Stats.SystemCount, view.Stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		for _, sys := range view.Stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MinDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MaxDuration))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
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
