package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "starfall.yaml"

// LoadStarfall loads the Starfall configuration.
// Search order: customPath -> ~/.starfall/configs/starfall.yaml -> ./configs/starfall.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadStarfall(customPath string) (StarfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultStarfallConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultStarfallConfig()
	if err := yaml.Unmarshal(defaultStarfallYAML, &cfg); err != nil {
		return DefaultStarfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid
// files are skipped.
func tryLoad(path string) (StarfallConfig, bool) {
	cfg := DefaultStarfallConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", "configs", filename)
}

// ApplyStarfallPreset modifies the config based on a difficulty preset.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Bombs.SpeedMin = 150
		cfg.Bombs.SpeedMax = 400
		cfg.GameOver.RestartDelayMS = 5000
	case DifficultyHard:
		cfg.Bombs.SpeedMin = 300
		cfg.Bombs.SpeedMax = 700
		cfg.Stars.Points = 15
	}
}

// Marshal renders a config as YAML.
func Marshal(cfg StarfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
