package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"exogame/internal/config"
	"exogame/internal/game"
	"exogame/internal/input"
	"exogame/internal/savegame"
)

func main() {
	configPath := flag.String("config", "config/game.yaml", "path to the game config")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("Could not change to %s: %v", execDir, err)
			}
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	saves := savegame.Open(cfg.Save.AppName, cfg.Save.Slot)
	g, err := game.New(cfg, input.RaylibSource{}, saves)
	if err != nil {
		log.Fatalf("Game: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Fatalf("Game: %v", err)
	}
}
