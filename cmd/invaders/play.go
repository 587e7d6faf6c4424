package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: fmt.Sprintf(`Start a game of Space Invaders.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/W/Up   - Fire
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Difficulty options:
%s
Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml
  invaders play --seed 42 --log-file ./invaders.log --log-level debug`, presetHelp()),
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// presetHelp lists every difficulty preset with its menu description.
func presetHelp() string {
	var b strings.Builder
	for _, p := range config.Presets() {
		fmt.Fprintf(&b, "  %-6s - %s\n", p, p.Description())
	}
	return b.String()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(string(preset))

	game, err := registry.Create(invaders.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closeLog := sessionLogger()
	defer closeLog()

	store := openStore(cmd.Context(), stderrLogger())
	if store != nil {
		defer store.Close()
	}

	session := tui.Session{Store: store, Logger: logger, Difficulty: string(preset)}
	if _, err := tui.Run(game, session, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the frame loop settings from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failures are logged and yield nil so
// the game can still be played without saving scores.
func openStore(ctx context.Context, logger *log.Logger) *storage.Store {
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
