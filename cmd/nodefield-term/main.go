package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/ingyamilmolinar/nodefield/internal/config"
	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
	"github.com/ingyamilmolinar/nodefield/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a nodefield.gcfg settings file")
	profileName := flag.String("profile", "", "override the configured profile (sphere, cube)")
	logPath := flag.String("log", "", "write logs to this file; the terminal itself is busy")
	flag.Parse()

	logger := game_log.Discard()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			game_log.New(os.Stderr, game_log.LevelError).Errorf("[MAIN] opening log: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = game_log.New(f, game_log.LevelInfo)
	}
	stderr := game_log.New(os.Stderr, game_log.LevelError)

	cfg, err := config.Load(*configPath)
	if err != nil {
		stderr.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
	if *profileName != "" {
		cfg.Field.Profile = *profileName
	}
	logger.SetLevel(game_log.LevelFromString(cfg.Log.Level))
	p, err := cfg.Profile()
	if err != nil {
		stderr.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		stderr.Errorf("[MAIN] terminal: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.NewSession(screen, p, cfg.Terminal.FPS, logger).Run(ctx); err != nil {
		stderr.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}
