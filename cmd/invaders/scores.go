package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for one difficulty only.

Examples:
  invaders scores
  invaders scores hard
  invaders scores --limit 25
  invaders scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	difficulty := ""
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(ctx, invaders.ID); err != nil {
			return err
		}
		stderrLogger().Info("scores cleared", "path", flagDBPath)
		return nil
	}

	scores, err := store.TopScores(ctx, invaders.ID, difficulty, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "High Scores - Space Invaders"
	if difficulty != "" {
		title += " (" + config.DifficultyPreset(difficulty).Title() + ")"
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "Rank", "Score", "Wave", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "----", "-----", "----", "----------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-10s  %s\n", i+1, entry.Score, entry.Level, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(ctx, invaders.ID, difficulty); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if difficulty == "" {
		if played, err := store.Difficulties(ctx, invaders.ID); err == nil && len(played) > 0 {
			fmt.Printf("Played on: %s\n", strings.Join(played, ", "))
		}
	}
	return nil
}
