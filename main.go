// Chess 2.0 - a 10x10 fantasy chess variant built with Ebitengine
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SiddhanthDubey/chess2.0/internal/storage"
	"github.com/SiddhanthDubey/chess2.0/internal/ui"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	store, err := openStorage(cfg.dbDir)
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v (results will not be saved)", err)
	} else {
		defer store.Close()
	}

	game := ui.NewGame(ui.Config{
		Storage: store,
		Mute:    cfg.mute,
		NoFlip:  cfg.noFlip,
	})

	ui.WindowScale = cfg.scale
	ebiten.SetWindowSize(int(ui.ScreenWidth*cfg.scale), int(ui.ScreenHeight*cfg.scale))
	ebiten.SetWindowTitle("10x10 Fantasy Chess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func openStorage(dir string) (*storage.Storage, error) {
	if dir == "" {
		return storage.NewStorage()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return storage.Open(storage.Options{Dir: dir})
}
