package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config a game would start with, after applying the search
order (--config, ~/.arcade/configs, ./configs, built-in defaults) and the
difficulty preset. The output can be saved and edited as a custom config.

Examples:
  invaders config > ~/.arcade/configs/invaders.yaml
  invaders config --difficulty hard --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		stderrLogger().Warn("using default config", "err", err)
	}
	config.ApplyInvadersPreset(&cfg, preset)

	var out []byte
	switch flagConfigFormat {
	case "yaml", "yml":
		out, err = config.EncodeYAML(cfg)
	case "toml":
		out, err = config.EncodeTOML(cfg)
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagConfigFormat)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
