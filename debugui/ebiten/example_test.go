package ebiten_test

import (
	"context"
	"sync/atomic"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/stats"
)

// Game implements ebiten.Game and draws the debug overlay over an empty screen.
type Game struct {
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func (g *Game) Update() error {
	g.backend.Update(g.overlay)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	g.backend.DrawOver(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Blockfall ImGui Example", 1280, 720)

	settings := config.NewSettings(config.Default())
	tracker := stats.NewTracker()

	var latest atomic.Pointer[loop.View]
	views := func() (loop.View, bool) {
		if v := latest.Load(); v != nil {
			return *v, true
		}
		return loop.View{}, false
	}

	manager := loop.NewManager(settings,
		loop.WithSchedulerOptions(loop.OnView(func(v loop.View) { latest.Store(&v) })),
		loop.WithSystems(func() []loop.System { return []loop.System{tracker} }),
	)
	manager.Start(context.Background())
	defer manager.Stop()

	overlay := debugui.NewOverlay(
		debugui.SessionWindow(views, settings, nil),
		debugui.TrackerWindow(tracker),
		debugui.ImguiItem{
			Render: func() {
				imgui.Begin("Debug Window")
				imgui.Text("Hello from blockfall!")
				imgui.End()
			},
		},
	)

	if err := ebiten.RunGame(&Game{backend: backend, overlay: overlay}); err != nil {
		panic(err)
	}
}
