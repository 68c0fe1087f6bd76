package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names an explicit YAML file; when set, the file must exist.
const EnvConfigPath = "CONFIG_PATH"

// Dir returns the per-user config directory, $XDG_CONFIG_HOME/sesh-ledger or
// ~/.config/sesh-ledger.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sesh-ledger")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sesh-ledger")
}

// Load builds the configuration. ENV overrides YAML, which overrides the
// env-default tags.
//
// The YAML file is $CONFIG_PATH, else the first of ./config.yaml and
// Dir()/config.yaml that exists. Without one only ENV and defaults apply.
// Validate then resolves the device timezone and ledger defaults.
func Load() (*Config, error) {
	path, err := locate()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", sourceName(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func locate() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}

	for _, path := range []string{"config.yaml", filepath.Join(Dir(), "config.yaml")} {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func sourceName(path string) string {
	if path == "" {
		return "env"
	}
	return path
}
