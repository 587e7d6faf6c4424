package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: FormationConfig{
			Rows:             3,
			Columns:          8,
			StartX:           2,
			StartY:           2,
			RowSpacing:       2,
			MinColumnSpacing: 2,
		},
		Waves: WavesConfig{
			MoveInterval:  0.6,
			Speedup:       0.9,
			StrongBase:    25,
			StrongStep:    15,
			FirePercent:   4,
			ScaleStrength: true,
		},
		Player: PlayerConfig{
			Lives: 3,
		},
		Shields: ShieldsConfig{
			Count:  4,
			Health: 3,
		},
		Scoring: ScoringConfig{
			KillPoints: 10,
		},
		Explosion: ExplosionConfig{
			Speed: 2,
			TTL:   20,
		},
	}
}

// DefaultYAML returns the embedded default YAML, comments included.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}

// EncodeYAML renders a config as YAML.
func EncodeYAML(cfg InvadersConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeTOML renders a config as TOML.
func EncodeTOML(cfg InvadersConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode toml: %w", err)
	}
	return buf.Bytes(), nil
}
