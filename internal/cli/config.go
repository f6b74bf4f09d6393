package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the optional user configuration read from config.toml in
// the crabsay directory under the user config directory (on Linux,
// ~/.config/crabsay/config.toml).
type Config struct {
	Width int `toml:"width"` // default wrap width when --width is not given
}

// configPath returns the config file location, or "" when the user config
// directory cannot be determined.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crabsay", "config.toml")
}

// loadConfig reads and decodes the config file at path. A missing file or
// an empty path yields the zero Config; a file that exists but does not
// parse is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
