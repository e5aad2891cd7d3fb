package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHarvest loads Harvest Rush configuration.
// Search order: customPath -> ~/.harvest/configs/harvest.yaml -> ./configs/harvest.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadHarvest(customPath string) (HarvestConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HarvestConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeHarvest(data)
		if err != nil {
			return HarvestConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("harvest.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeHarvest(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "harvest.yaml")); err == nil {
		if cfg, err := decodeHarvest(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeHarvest(defaultHarvestYAML)
	if err != nil {
		return DefaultHarvestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeHarvest parses YAML on top of the hardcoded defaults and validates the result.
func decodeHarvest(data []byte) (HarvestConfig, error) {
	cfg := DefaultHarvestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HarvestConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HarvestConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".harvest", "configs", filename)
}
