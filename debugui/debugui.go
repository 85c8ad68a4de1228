// Package debugui renders Dear ImGui inspection windows for a running session.
// Windows are plain render functions collected by an Overlay, which the
// front-end calls once per frame between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// InputState tracks Dear ImGui's input capture state.
// Front-ends should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay holds the windows rendered each frame.
type Overlay struct {
	items   []func()
	input   InputState
	Visible bool
}

func NewOverlay() *Overlay {
	return &Overlay{Visible: true}
}

// Add registers a render function. Functions run in registration order.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, render)
}

// Len returns the number of registered windows.
func (o *Overlay) Len() int {
	return len(o.items)
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Input returns the capture state recorded by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

// Render updates the input state and draws every window.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if !o.Visible {
		return
	}
	for _, render := range o.items {
		render()
	}
}
