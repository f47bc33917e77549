package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHopper loads and validates the hopper configuration.
// Search order: customPath -> ~/.hopper/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default.
// Files are applied on top of the defaults, so a file only needs the keys it changes.
func LoadHopper(customPath string) (HopperConfig, error) {
	cfg, err := loadHopper(customPath)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadHopper(customPath string) (HopperConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultHopperConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hopper.yaml"); userCfgPath != "" {
		if cfg, ok, err := tryFile(userCfgPath); ok || err != nil {
			return cfg, err
		}
	}

	// Try local configs directory
	if cfg, ok, err := tryFile(filepath.Join("configs", "hopper.yaml")); ok || err != nil {
		return cfg, err
	}

	// Use embedded default YAML
	cfg := DefaultHopperConfig()
	if err := yaml.Unmarshal(defaultHopperYAML, &cfg); err != nil {
		return DefaultHopperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reads an optional config file. A missing file is skipped;
// one that exists but cannot be read or parsed is an error.
func tryFile(path string) (HopperConfig, bool, error) {
	cfg := DefaultHopperConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopper", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg HopperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
