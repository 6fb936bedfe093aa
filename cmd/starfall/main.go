// starfall is a terminal platformer: collect the falling stars and dodge
// the bombs that every cleared row lets loose.
//
// Usage:
//
//	starfall play            - Play a round straight away
//	starfall menu            - Start the menu (play, difficulty, scores)
//	starfall serve           - Start SSH server for remote play
//	starfall scores          - Show high scores
//	starfall config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.starfall/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - collect the stars, dodge the bombs",
	Long: `Starfall is a small platformer for the terminal.

Run and jump across the platforms to collect every falling star. Each
cleared row drops a new set of stars and releases one more bouncing bomb.
Touch a bomb and the round is over.

Available commands:
  play     - Start a round directly
  menu     - Interactive menu with difficulty and scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config

Examples:
  starfall play
  starfall play --difficulty hard
  starfall menu
  starfall serve --ssh :2222
  starfall scores --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs while playing)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger opens the log file named by --log-file. The terminal belongs
// to the game, so without a file nothing is logged.
func openLogger() (*log.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(flagLogFile, "starfall", level)
}

// loadGameConfig loads the config named by --config and resolves --difficulty.
func loadGameConfig() (config.StarfallConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.StarfallConfig{}, "", err
	}
	cfg, err := config.LoadStarfall(flagConfig)
	if err != nil {
		return config.StarfallConfig{}, "", err
	}
	return cfg, preset, nil
}

// runtimeConfig builds the runtime config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
