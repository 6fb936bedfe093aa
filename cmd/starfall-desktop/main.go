//go:build desktop

// starfall-desktop plays Starfall in a window.
//
// Build with: go build -tags desktop ./cmd/starfall-desktop
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/platform/desktop"
	"github.com/vovakirdan/starfall/internal/storage"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to custom game config YAML")
		difficulty = flag.String("difficulty", "", "Difficulty preset: easy, normal, hard")
		dbPath     = flag.String("db", "~/.starfall/scores.db", "Path to scores database")
		seed       = flag.Int64("seed", 0, "RNG seed (0 = random based on time)")
		scale      = flag.Float64("scale", 1, "Window scale")
	)
	flag.Parse()

	logger := logging.New(os.Stderr, "starfall", log.InfoLevel)

	if err := run(*configPath, *difficulty, *dbPath, *seed, *scale, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, difficulty, dbPath string, seed int64, scale float64, logger *log.Logger) error {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		return err
	}
	config.ApplyStarfallPreset(&cfg, preset)

	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.DefaultConfig()
	runtime.Seed = seed

	return desktop.Run(starfall.NewWithConfig(cfg), runtime, desktop.Options{
		Store:      store,
		Difficulty: string(preset),
		Logger:     logger,
		Scale:      scale,
	})
}
