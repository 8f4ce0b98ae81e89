// Package config loads the spellbook runtime configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/spellbook/data"
)

// Config holds all runtime configuration.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Definition data. An empty DataDir means the embedded data files.
	DataDir         string   `yaml:"data_dir"`
	DefinitionFiles []string `yaml:"definition_files"`

	// Simulation
	TickRate int      `yaml:"tick_rate"` // ticks per second
	Slots    []string `yaml:"slots"`     // variant identities on the bar, empty = whole kit

	Telemetry bool `yaml:"telemetry"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	files := make([]string, len(data.DefinitionFiles))
	copy(files, data.DefinitionFiles)
	return Config{
		LogLevel:        "info",
		DefinitionFiles: files,
		TickRate:        30,
		Telemetry:       false,
	}
}

// Load loads config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("tick_rate must be in 1..240, got %d", c.TickRate)
	}
	if len(c.DefinitionFiles) == 0 {
		return fmt.Errorf("definition_files must not be empty")
	}
	return nil
}

// TickInterval returns the duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// SlogLevel parses LogLevel, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
