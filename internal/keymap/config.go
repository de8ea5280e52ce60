package keymap

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the keyscope application configuration, read from a TOML
// file.
type Config struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// UserKeymap is the path to the user-scope keymap file.
	UserKeymap string `toml:"user_keymap"`

	// WorkspaceKeymap is the path to the workspace-scope keymap file.
	WorkspaceKeymap string `toml:"workspace_keymap"`

	// Watch enables automatic keymap reload on file change.
	Watch bool `toml:"watch"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML configuration file. A missing file yields the
// defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("keymap: reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("keymap: parsing config %s: %w", path, err)
	}
	return cfg, nil
}
