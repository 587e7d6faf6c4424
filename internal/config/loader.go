package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.{yaml,toml} ->
// ./configs/invaders.{yaml,toml} -> embedded default.
// Fields missing from a file keep their default values.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), err
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("invaders.yaml"),
		userConfigPath("invaders.toml"),
		filepath.Join("configs", "invaders.yaml"),
		filepath.Join("configs", "invaders.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and validates a config file, choosing the decoder by extension.
func loadFile(path string) (InvadersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return InvadersConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config bytes on top of the defaults. ext selects the format:
// ".toml" uses TOML, anything else YAML.
func Parse(data []byte, ext string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	if strings.EqualFold(ext, ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
