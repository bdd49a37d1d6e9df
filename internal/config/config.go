package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is consulted when no explicit config path is given.
const DefaultPath = "~/.config/headsum/config.toml"

// Config contains CLI settings.
type Config struct {
	Jobs      int    `toml:"jobs"`       // 0 means one per CPU
	Format    string `toml:"format"`     // plain, json, table, or empty to detect
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // console or json
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Jobs:      0,
		Format:    "",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads and validates the config at path. An empty path falls back to
// DefaultPath. A missing file is not an error; the defaults are returned and
// exists reports false.
func Load(path string) (cfg *Config, exists bool, err error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, false, err
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		exists = true

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return nil, false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, false, fmt.Errorf("open config: %w", err)
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, false, err
	}
	return &c, exists, nil
}

func (c *Config) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs: must be non-negative, got %d", c.Jobs)
	}
	switch c.Format {
	case "", "plain", "json", "table":
	default:
		return fmt.Errorf("format: unsupported value %q", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
