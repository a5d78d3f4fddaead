// Package debugui provides Dear ImGui debug windows for a running blockfall session.
// Windows are plain render functions collected by an Overlay, which draws them once per
// frame between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ViewSource returns the latest published view, or false before the first one.
type ViewSource func() (loop.View, bool)

// Overlay owns the debug windows of a frontend.
type Overlay struct {
	items []ImguiItem
	state ImguiInputState
}

func NewOverlay(items ...ImguiItem) *Overlay {
	return &Overlay{items: items}
}

// Add appends a window. Windows render in the order they were added.
func (o *Overlay) Add(item ImguiItem) {
	o.items = append(o.items, item)
}

// Render updates the input state and draws every window. It must be called inside an ImGui
// frame.
func (o *Overlay) Render() {
	o.state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// InputState returns the capture state seen by the last Render.
func (o *Overlay) InputState() ImguiInputState {
	return o.state
}
