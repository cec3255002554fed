package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritecore/loop"
)

// GroupBrowser shows every group with its size and, when expanded, the text of
// each member in walk order.
type GroupBrowser[T any] struct {
	groups             *loop.Groups[T]
	maxEntitiesPerNode int
}

func NewGroupBrowser[T any](groups *loop.Groups[T], maxEntitiesPerNode int) *GroupBrowser[T] {
	return &GroupBrowser[T]{
		groups:             groups,
		maxEntitiesPerNode: maxEntitiesPerNode,
	}
}

func (gb *GroupBrowser[T]) Render() {
	if !imgui.BeginV("Group Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := gb.groups.CollectStats()
	imgui.Text(fmt.Sprintf("Groups: %d", stats.GroupCount))
	imgui.Text(fmt.Sprintf("Memberships: %d", stats.TotalMembers))
	imgui.Separator()

	for _, group := range stats.Groups {
		label := fmt.Sprintf("%s (%d)##group%d", group.Name, group.Size, group.Id)
		if !imgui.TreeNodeStr(label) {
			continue
		}

		shown := 0
		for link := range gb.groups.Chain(group.Id).Links() {
			if shown == gb.maxEntitiesPerNode {
				imgui.BulletText(fmt.Sprintf("... %d more", group.Size-shown))
				break
			}
			text := link.String()
			if text == "" {
				text = "<empty>"
			}
			imgui.BulletText(text)
			shown++
		}
		imgui.TreePop()
	}

	imgui.End()
}
