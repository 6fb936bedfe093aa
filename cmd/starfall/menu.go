package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Starfall with a menu",
	Long: `Start Starfall in interactive menu mode.

Pick Play to choose a difficulty and start a round, or High Scores to
browse the leaderboard. Leaving a round brings you back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  starfall menu
  starfall menu --fps 30
  starfall menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, starfall.ID)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceQuit:
			return nil

		case tui.MenuChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, starfall.ID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil // User quit from scoreboard
			}
			continue

		case tui.MenuChoicePlay:
			chosen, selErr := tui.RunDifficultySelector(cfg, preset)
			if selErr != nil {
				return selErr
			}
			// User pressed back or quit
			if chosen == "" {
				continue
			}
			preset = chosen

			gameCfg := base
			gameCfg.Platforms = append([]config.PlatformConfig(nil), base.Platforms...)
			config.ApplyStarfallPreset(&gameCfg, preset)

			// Fresh seed for each game unless one was pinned
			runCfg := cfg
			if flagSeed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}

			result, runErr := tui.Run(starfall.NewWithConfig(gameCfg), store, runCfg, tui.Options{
				Difficulty: string(preset),
				Logger:     logger,
			})
			if runErr != nil {
				return fmt.Errorf("running game: %w", runErr)
			}
			cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH
			if !result.BackToMenu {
				return nil
			}
		}
	}
}
