package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a CLI string into a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyFixed:
		return "Fixed"
	default:
		return string(p)
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "5 lives, slow formation, rare enemy fire"
	case DifficultyNormal:
		return "3 lives, classic pace"
	case DifficultyHard:
		return "2 lives, fast formation, heavy fire"
	case DifficultyFixed:
		return "no speed-up, no armored enemies"
	default:
		return ""
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Waves.MoveInterval = 0.8
		cfg.Waves.FirePercent = 2
		cfg.Waves.StrongBase = 10
		cfg.Waves.StrongStep = 10
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Waves.MoveInterval = 0.45
		cfg.Waves.FirePercent = 7
		cfg.Waves.StrongBase = 40
		cfg.Waves.StrongStep = 20
	case DifficultyFixed:
		cfg.Waves.Speedup = 1.0
		cfg.Waves.ScaleStrength = false
	}
}
