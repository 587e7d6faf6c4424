package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a difficulty, Enter to play.
Tab opens the scoreboard. After a game ends, B or Esc returns to the menu.

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog := sessionLogger()
	defer closeLog()

	store := openStore(cmd.Context(), stderrLogger())
	if store != nil {
		defer store.Close()
	}

	invaders.SetConfigPath(flagConfig)
	cfg := runtimeConfig()
	preset := config.DifficultyNormal

	for {
		result, err := tui.RunMenu(store, invaders.ID, preset, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, invaders.ID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !back {
				return nil
			}
			continue
		}

		preset = result.Preset
		invaders.SetDifficultyPreset(string(preset))
		game, err := registry.Create(invaders.ID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		logger.Info("starting game", "difficulty", preset)
		session := tui.Session{Store: store, Logger: logger, Difficulty: string(preset)}
		back, err := tui.Run(game, session, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
