// Package ebiten provides Dear ImGui backend integration for the Ebiten frontend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend}
}

// Update builds one ImGui frame from overlay. Call it from ebiten.Game.Update.
func (b *ImguiBackend) Update(overlay *debugui.Overlay) {
	b.BeginFrame()
	overlay.Render()
	b.EndFrame()
}

// DrawOver draws the last built frame on top of screen. Call it last in ebiten.Game.Draw.
func (b *ImguiBackend) DrawOver(screen *ebiten.Image) {
	b.Draw(screen)
}
