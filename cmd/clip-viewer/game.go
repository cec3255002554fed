package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/spritecore/anim"
	debugui_ebiten "github.com/plus3/spritecore/debugui/ebiten"
	"github.com/plus3/spritecore/loop"
)

const (
	slotColumns = 6
	slotSize    = 96
	slotPadding = 24
	slotMarginX = 420
	slotMarginY = 40
)

var pastelColors = [][3]uint8{
	{255, 179, 186},
	{179, 229, 252},
	{255, 223, 186},
	{186, 255, 201},
	{255, 200, 221},
	{186, 225, 255},
	{255, 255, 186},
	{217, 186, 255},
}

type Game struct {
	Table     *anim.Table
	ClipsPath string
	Watcher   *anim.Watcher
	Scheduler *loop.Scheduler[Sprite]
	Imgui     *debugui_ebiten.ImguiBackend

	// sprites owns every entity; groups only hold weak references
	sprites []*Sprite
}

// Spawn creates a sprite playing clip and makes it visible
func (g *Game) Spawn(clip *anim.Clip) *Sprite {
	sprite := &Sprite{
		Name:   clip.Name(),
		Player: anim.NewPlayer(clip),
		Slot:   len(g.sprites),
	}
	g.sprites = append(g.sprites, sprite)

	groups := g.Scheduler.Groups()
	groups.Chain(groups.Define("visible")).Prepend(sprite)
	return sprite
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollReload()

	g.Imgui.BeginFrame()
	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))
	g.Imgui.EndFrame()

	return nil
}

func (g *Game) pollReload() {
	if g.Watcher == nil {
		return
	}

	select {
	case err := <-g.Watcher.Errors:
		log.Printf("[clip-viewer] Watch error: %v", err)
	default:
	}

	reload := false
	for {
		path, ok := g.Watcher.Poll()
		if !ok {
			break
		}
		log.Printf("[clip-viewer] Detected change: %s", path)
		reload = true
	}
	if !reload {
		return
	}

	result, err := g.Table.ReloadFile(g.ClipsPath)
	if err != nil {
		log.Printf("[clip-viewer] Reload failed, keeping previous clips: %v", err)
		return
	}
	for _, name := range result.Added {
		if clip, ok := g.Table.Lookup(name); ok {
			g.Spawn(clip)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	for _, sprite := range g.sprites {
		col := sprite.Slot % slotColumns
		row := sprite.Slot / slotColumns
		x := float32(slotMarginX + col*(slotSize+slotPadding))
		y := float32(slotMarginY + row*(slotSize+slotPadding+16))

		frame, ok := sprite.Player.Frame()
		if ok {
			c := pastelColors[frame%len(pastelColors)]
			vector.DrawFilledRect(screen, x, y, slotSize, slotSize, color.RGBA{c[0], c[1], c[2], 255}, false)
		} else {
			vector.DrawFilledRect(screen, x, y, slotSize, slotSize, color.RGBA{60, 60, 60, 255}, false)
		}

		label := fmt.Sprintf("%s\n#%d %s", sprite.Player.Clip().Name(), frame, sprite.Player.State())
		ebitenutil.DebugPrintAt(screen, label, int(x), int(y)+slotSize+2)
	}

	g.Imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
