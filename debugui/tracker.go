package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/stats"
)

// TrackerWindow shows the counters of a stats.Tracker.
func TrackerWindow(tracker *stats.Tracker) ImguiItem {
	return ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(600, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(220, 300), imgui.CondOnce)

			if !imgui.BeginV("Counters", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			snapshot := tracker.Snapshot()
			imgui.Text(fmt.Sprintf("Ticks: %d", snapshot.Ticks))
			imgui.Text(fmt.Sprintf("Paused Ticks: %d", snapshot.PausedTicks))
			imgui.Text(fmt.Sprintf("Locks: %d", snapshot.Locks))
			imgui.Text(fmt.Sprintf("Lines: %d", snapshot.Lines))
			imgui.Text(fmt.Sprintf("Game Overs: %d", snapshot.GameOvers))

			if imgui.TreeNodeStr("Pieces") {
				const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
				if imgui.BeginTableV("PiecesTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
					imgui.TableSetupColumn("Kind")
					imgui.TableSetupColumn("Locked")
					imgui.TableHeadersRow()

					for _, piece := range snapshot.Pieces {
						imgui.TableNextRow()
						imgui.TableNextColumn()
						imgui.Text(piece.Kind.String())
						imgui.TableNextColumn()
						imgui.Text(fmt.Sprintf("%d", piece.Count))
					}

					imgui.EndTable()
				}
				imgui.TreePop()
			}

			if imgui.TreeNodeStr("Clears") {
				for _, c := range snapshot.Clears {
					imgui.BulletText(fmt.Sprintf("%d at once: %d", c.Size, c.Count))
				}
				imgui.TreePop()
			}

			imgui.End()
		},
	}
}
