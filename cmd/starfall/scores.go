package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top rounds. Use --difficulty to show one preset only.

Examples:
  starfall scores
  starfall scores --difficulty hard
  starfall scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	// An empty --difficulty lists every preset
	difficulty := ""
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(starfall.ID, difficulty, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	// Display scores
	title := "High Scores - Starfall"
	if difficulty != "" {
		title += " (" + difficulty + ")"
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'starfall play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Waves", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %s\n", i+1, entry.Score, entry.Waves, entry.Difficulty, dateStr)
	}

	// Show totals
	stats, err := store.GetGameStats(starfall.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Most waves: %d  Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.BestWaves, stats.AvgScore)
	}
	return nil
}
