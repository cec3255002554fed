package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spritecore/anim"
	"github.com/plus3/spritecore/debugui"
	debugui_ebiten "github.com/plus3/spritecore/debugui/ebiten"
	"github.com/plus3/spritecore/loop"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	clipsPath := flag.String("clips", "data/clips.yaml", "Clip table to load.")
	watch := flag.Bool("watch", true, "Reload the clip table when it changes on disk.")
	flag.Parse()

	table, err := anim.LoadTable(*clipsPath)
	if err != nil {
		log.Fatalf("[clip-viewer] %v", err)
	}
	log.Printf("[clip-viewer] Loaded %d clips from %s", table.Len(), *clipsPath)

	imguiBackend := debugui_ebiten.NewImguiBackend("Clip Viewer", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	groups := loop.NewGroups[Sprite]()
	scheduler := loop.NewScheduler(groups)
	scheduler.Register(&AnimateSystem{})
	scheduler.Register(&RestartSystem{})
	debugui.RegisterDebugUI(scheduler, table)

	game := &Game{
		Table:     table,
		ClipsPath: *clipsPath,
		Scheduler: scheduler,
		Imgui:     imguiBackend,
	}
	for clip := range table.All() {
		game.Spawn(clip)
	}

	if *watch {
		watcher, err := anim.NewWatcher(filepath.Dir(*clipsPath))
		if err != nil {
			log.Printf("[clip-viewer] Hot reload disabled: %v", err)
		} else {
			game.Watcher = watcher
			defer watcher.Close()
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("[clip-viewer] %v", err)
	}
}
