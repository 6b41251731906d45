package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides understood by the tool.
type Env struct {
	// ConfigDir replaces ~/.worldheight when set.
	ConfigDir string `env:"WORLDHEIGHT_CONFIG_DIR"`
	// ConfigFile is the file name inside the config directory.
	ConfigFile string `env:"WORLDHEIGHT_CONFIG_FILE" envDefault:"increased-world-height.json"`
	// StatusInterval is how often the host logs the current values. Zero disables it.
	StatusInterval time.Duration `env:"WORLDHEIGHT_STATUS_INTERVAL" envDefault:"1m"`
	// HookLogInterval rate limits the host hook trace lines.
	HookLogInterval time.Duration `env:"WORLDHEIGHT_HOOK_LOG_INTERVAL" envDefault:"1m"`
}

// ParseEnv loads the overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".worldheight"), nil
}

// ResolvePath returns the configuration file path. dirOverride wins over
// WORLDHEIGHT_CONFIG_DIR, which wins over GetConfigDir.
func ResolvePath(dirOverride string) (string, error) {
	e, err := ParseEnv()
	if err != nil {
		return "", err
	}

	dir := dirOverride
	if dir == "" {
		dir = e.ConfigDir
	}
	if dir == "" {
		if dir, err = GetConfigDir(); err != nil {
			return "", err
		}
	}

	name := e.ConfigFile
	if name == "" {
		name = ConfigFileName
	}
	return filepath.Join(dir, name), nil
}
