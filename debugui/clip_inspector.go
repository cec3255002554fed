package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritecore/anim"
)

// ClipInspector lists the clips of a table and edits the selected one in place.
// Edits go straight to the shared clip, so every sprite playing it changes too.
type ClipInspector struct {
	table      *anim.Table
	filterText string
	selected   *anim.Clip
	renameText string
	lastError  string
}

func NewClipInspector(table *anim.Table) *ClipInspector {
	return &ClipInspector{table: table}
}

// Selected returns the clip being edited, nil when none is selected
func (ci *ClipInspector) Selected() *anim.Clip {
	return ci.selected
}

func (ci *ClipInspector) Render() {
	if !imgui.BeginV("Clip Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##clipsearch", "Filter clips...", &ci.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ci.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ClipTable", 4, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Frames")
		imgui.TableSetupColumn("FPS")
		imgui.TableSetupColumn("Loop")
		imgui.TableHeadersRow()

		filter := strings.ToLower(ci.filterText)
		for clip := range ci.table.All() {
			if filter != "" && !strings.Contains(strings.ToLower(clip.Name()), filter) {
				continue
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(clip.Name(), ci.selected == clip, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ci.selected = clip
				ci.renameText = clip.Name()
				ci.lastError = ""
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(clip.Frames())))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", clip.Framerate()))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%v", clip.Looped()))
		}

		imgui.EndTable()
	}

	if ci.selected != nil {
		imgui.Separator()
		ci.renderEditor(ci.selected)
	}

	imgui.End()
}

func (ci *ClipInspector) renderEditor(clip *anim.Clip) {
	imgui.Text(fmt.Sprintf("Clip #%d (hash 0x%X)", clip.Id(), clip.Hash()))

	imgui.Text("Name:")
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	imgui.InputTextWithHint("##clipname", "", &ci.renameText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Rename") {
		if err := ci.table.Rename(clip.Name(), ci.renameText); err != nil {
			ci.lastError = err.Error()
		} else {
			ci.lastError = ""
		}
	}

	delay := float32(clip.Delay())
	imgui.Text("Delay (s):")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("##clipdelay", &delay) {
		// players clamp negative delays, but keep the table sane
		if delay < 0 {
			delay = 0
		}
		clip.SetDelay(float64(delay))
	}

	looped := clip.Looped()
	if imgui.Checkbox("Looped", &looped) {
		clip.SetLooped(looped)
	}

	imgui.Text(fmt.Sprintf("Frames: %v", clip.Frames()))
	imgui.Text(fmt.Sprintf("Duration: %.3fs", clip.Duration()))

	if ci.lastError != "" {
		imgui.TextColored(imgui.NewVec4(1, 0.3, 0.3, 1), ci.lastError)
	}
}
