package debugui

import (
	"github.com/plus3/spritecore/anim"
	"github.com/plus3/spritecore/loop"
)

// RegisterDebugUI creates the standard windows for a clip table and a
// scheduler, registers an ImguiSystem rendering them and returns it.
func RegisterDebugUI[T any](scheduler *loop.Scheduler[T], table *anim.Table) *ImguiSystem[T] {
	system := &ImguiSystem[T]{}
	system.Add(
		NewClipInspector(table).Render,
		NewGroupBrowser(scheduler.Groups(), 100).Render,
		NewSchedulerStats(scheduler, 120).Render,
	)
	scheduler.Register(system)
	return system
}
