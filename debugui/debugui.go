// Package debugui provides Dear ImGui windows for tuning clips and inspecting
// entity groups while the game runs. Windows are plain render functions that an
// ImguiSystem schedules after every other system has run for the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritecore/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame and
// updates InputState with the current input capture state.
type ImguiSystem[T any] struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add appends render functions to the system
func (i *ImguiSystem[T]) Add(render ...func()) {
	for _, fn := range render {
		i.Items = append(i.Items, ImguiItem{Render: fn})
	}
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem[T]) Execute(frame *loop.UpdateFrame[T]) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
