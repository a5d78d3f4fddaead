package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/config"
)

// SessionWindow shows the current session and lets the user pause it, change its speed or
// start a new one. restart may be nil.
func SessionWindow(views ViewSource, settings *config.Settings, restart func()) ImguiItem {
	speeds := []config.Speed{config.SpeedSlow, config.SpeedNormal, config.SpeedFast}

	return ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(330, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)

			if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			view, ok := views()
			if !ok {
				imgui.Text("Waiting for the first frame")
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Name: %s", view.Session))
			imgui.Text(fmt.Sprintf("Score: %d", view.Score))
			imgui.Text(fmt.Sprintf("Lines: %d", view.Lines))
			imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d)", view.Current.Kind, view.Current.X, view.Current.Y))
			imgui.Text(fmt.Sprintf("Next: %s", view.Next.Kind))

			switch {
			case view.Over:
				imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
			case view.Paused:
				imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
			default:
				imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
			}

			imgui.Separator()

			paused := settings.Paused()
			if imgui.Checkbox("Paused", &paused) {
				settings.SetPaused(paused)
			}

			current := settings.Speed()
			imgui.Text(fmt.Sprintf("Speed: %s (%s)", speedName(current), current.Delay()))
			for i, speed := range speeds {
				if i > 0 {
					imgui.SameLine()
				}
				if imgui.Button(speedName(speed)) {
					settings.SetSpeed(speed)
				}
			}

			if restart != nil {
				imgui.Separator()
				if imgui.Button("New Session") {
					restart()
				}
			}

			imgui.End()
		},
	}
}

func speedName(s config.Speed) string {
	if s == config.SpeedDefault {
		return "default"
	}
	return string(s)
}
