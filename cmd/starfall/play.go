package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing straight away.

Controls:
  Left/Right, A/D   - Run
  Up, W, Space      - Jump (only from a surface)
  P                 - Pause
  R                 - Restart now (after game over)
  Esc/B             - Back (while paused or after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower bombs, quicker restart
  normal - The classic tuning
  hard   - Fast bombs, 15 points per star

Examples:
  starfall play
  starfall play --difficulty hard
  starfall play --seed 42
  starfall play --config ./my-starfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail on a bad config here; the game itself falls back to defaults
	_, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Set config path and difficulty before creation
	starfall.SetConfigPath(flagConfig)
	starfall.SetDifficultyPreset(string(preset))

	game, err := registry.Create(starfall.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	_, err = tui.Run(game, store, runtimeConfig(width, height), tui.Options{
		Difficulty: string(preset),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
