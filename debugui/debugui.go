// Package debugui provides Dear ImGui developer windows for a running game.
// Windows are ImguiItems stored in the frame resources; ImguiSystem queues
// their render functions so they run after every other system.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// Items lists the windows drawn each frame.
type Items struct {
	List []ImguiItem
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends use it to keep keystrokes out of the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// AddItem appends a window to the Items resource, creating it if needed.
func AddItem(resources *frame.Resources, item ImguiItem) {
	items := frame.NewSingleton[Items](resources).Get()
	items.List = append(items.List, item)
}

// ImguiSystem updates ImguiInputState and defers every item's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      frame.Singleton[Items]
	InputState frame.Singleton[ImguiInputState]
}

func (s *ImguiSystem) Execute(f *frame.UpdateFrame) {
	if state := s.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	items := s.Items.Get()
	if items == nil {
		return
	}
	for _, item := range items.List {
		f.Commands.Defer(item.Render)
	}
}
