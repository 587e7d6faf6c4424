// invaders is a terminal Space Invaders game.
//
// Usage:
//
//	invaders play               - Play a game
//	invaders menu               - Pick a difficulty interactively
//	invaders scores [difficulty] - Show high scores
//	invaders simulate           - Run a headless game with an autopilot
//	invaders config             - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>   - Write session logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		stderrLogger().Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Defend the planet from a descending formation of invaders,
directly in your terminal.

Available commands:
  play      - Start a game
  menu      - Difficulty picker and scoreboard
  scores    - View high scores
  simulate  - Headless run with an autopilot
  config    - Print the effective game config

Examples:
  invaders play
  invaders play --difficulty hard
  invaders menu
  invaders scores easy
  invaders simulate --ticks 3600 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// stderrLogger returns the logger used for CLI warnings. An invalid
// --log-level falls back to info.
func stderrLogger() *log.Logger {
	logger, err := logging.New(os.Stderr, flagLogLevel, "invaders")
	if err != nil {
		logger, _ = logging.New(os.Stderr, "info", "invaders")
		logger.Warn("ignoring log level", "err", err)
	}
	return logger
}

// sessionLogger returns the logger for a TUI session. The terminal belongs to
// bubbletea, so without --log-file session logs are discarded. The returned
// close function is never nil.
func sessionLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return logging.Discard(), func() {}
	}
	logger, f, err := logging.OpenFile(flagLogFile, flagLogLevel, "invaders")
	if err != nil {
		stderrLogger().Warn("session logging disabled", "err", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { _ = f.Close() }
}
