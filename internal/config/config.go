// Package config provides YAML/TOML game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all tunable parameters of a Space Invaders game.
type InvadersConfig struct {
	Formation FormationConfig `yaml:"formation" toml:"formation"`
	Waves     WavesConfig     `yaml:"waves" toml:"waves"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Shields   ShieldsConfig   `yaml:"shields" toml:"shields"`
	Scoring   ScoringConfig   `yaml:"scoring" toml:"scoring"`
	Explosion ExplosionConfig `yaml:"explosion" toml:"explosion"`
}

// FormationConfig describes the enemy grid spawned at the start of each wave.
type FormationConfig struct {
	Rows             int `yaml:"rows" toml:"rows"`
	Columns          int `yaml:"columns" toml:"columns"`
	StartX           int `yaml:"start_x" toml:"start_x"`
	StartY           int `yaml:"start_y" toml:"start_y"`
	RowSpacing       int `yaml:"row_spacing" toml:"row_spacing"`
	MinColumnSpacing int `yaml:"min_column_spacing" toml:"min_column_spacing"`
}

// WavesConfig controls formation speed, enemy fire and strong-enemy odds.
type WavesConfig struct {
	MoveInterval  float64 `yaml:"move_interval" toml:"move_interval"` // Seconds between formation steps
	Speedup       float64 `yaml:"speedup" toml:"speedup"`             // Interval multiplier per cleared wave
	StrongBase    int     `yaml:"strong_base" toml:"strong_base"`     // Strong-enemy percent at level 2
	StrongStep    int     `yaml:"strong_step" toml:"strong_step"`     // Added percent per level after 2
	FirePercent   int     `yaml:"fire_percent" toml:"fire_percent"`   // Chance per tick that an enemy fires
	ScaleStrength bool    `yaml:"scale_strength" toml:"scale_strength"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// ShieldsConfig defines the destructible shields.
type ShieldsConfig struct {
	Count  int `yaml:"count" toml:"count"`
	Health int `yaml:"health" toml:"health"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	KillPoints int `yaml:"kill_points" toml:"kill_points"`
}

// ExplosionConfig defines particle bursts.
type ExplosionConfig struct {
	Speed int `yaml:"speed" toml:"speed"` // Cells per tick along each of the 8 directions
	TTL   int `yaml:"ttl" toml:"ttl"`     // Particle lifetime in ticks
}

// ErrInvalidConfig is returned by Validate for configs that cannot produce a playable game.
var ErrInvalidConfig = errors.New("invalid invaders config")

// Validate checks that the config describes a playable game.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Formation.Rows <= 0 || c.Formation.Columns <= 0:
		return fmt.Errorf("%w: formation needs at least one row and column", ErrInvalidConfig)
	case c.Formation.RowSpacing <= 0 || c.Formation.MinColumnSpacing <= 0:
		return fmt.Errorf("%w: formation spacing must be positive", ErrInvalidConfig)
	case c.Formation.StartX < 0 || c.Formation.StartY < 0:
		return fmt.Errorf("%w: formation start must not be negative", ErrInvalidConfig)
	case c.Waves.MoveInterval <= 0:
		return fmt.Errorf("%w: move_interval must be positive", ErrInvalidConfig)
	case c.Waves.Speedup <= 0 || c.Waves.Speedup > 1:
		return fmt.Errorf("%w: speedup must be in (0, 1]", ErrInvalidConfig)
	case c.Waves.FirePercent < 0 || c.Waves.FirePercent > 100:
		return fmt.Errorf("%w: fire_percent must be in [0, 100]", ErrInvalidConfig)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	case c.Shields.Count < 0 || c.Shields.Health <= 0:
		return fmt.Errorf("%w: shields need a non-negative count and positive health", ErrInvalidConfig)
	case c.Explosion.TTL <= 0:
		return fmt.Errorf("%w: explosion ttl must be positive", ErrInvalidConfig)
	}
	return nil
}

// StrongPercent returns the chance, in percent, that an enemy spawned on the
// given level is a strong (two-hit) variant. Level 1 never spawns strong enemies.
func (w WavesConfig) StrongPercent(level int) int {
	if !w.ScaleStrength || level < 2 {
		return 0
	}
	p := w.StrongBase + (level-2)*w.StrongStep
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// NextInterval returns the formation move interval for the wave after one
// that moved every interval seconds.
func (w WavesConfig) NextInterval(interval float64) float64 {
	return interval * w.Speedup
}
