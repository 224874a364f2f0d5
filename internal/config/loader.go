package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name in the user and local directories.
const FileName = "tetrotime.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.tetrotime/config.yaml -> ./configs/tetrotime.yaml -> embedded default
//
// Files only need to set the keys they change; everything else keeps its
// default. Unreadable or malformed files other than customPath are skipped.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults.
func parse(data []byte, source string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// UserPath returns the path of a file in ~/.tetrotime, or empty if home is
// unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetrotime", filename)
}
