package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/nodefield/internal/config"
	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
	"github.com/ingyamilmolinar/nodefield/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a nodefield.gcfg settings file")
	profileName := flag.String("profile", "", "override the configured profile (sphere, cube)")
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelInfo)
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
	if *profileName != "" {
		cfg.Field.Profile = *profileName
	}
	logger.SetLevel(game_log.LevelFromString(cfg.Log.Level))

	p, err := cfg.Profile()
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}

	bg := ui.New(p, cfg.Window.MountID, logger)
	if !bg.Mount() {
		// No host element: the page renders without a backdrop.
		return
	}
	defer bg.Unmount()

	// Window settings only apply to desktop builds; in WASM the canvas
	// follows its host element.
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGameWithOptions(bg, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		logger.Errorf("[MAIN] run: %v", err)
		os.Exit(1)
	}
}
