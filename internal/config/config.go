package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PixPMusic/gopher-push/internal/state"
	"github.com/google/uuid"
)

// Default port name of the Push 2 live port.
const DefaultPort = "Ableton Push 2 Live Port"

// Config holds application configuration
type Config struct {
	ID                   string `json:"id"`                     // Unique identifier of this install
	FirstLaunchCompleted bool   `json:"first_launch_completed"` // Set once the defaults were written
	InPort               string `json:"in_port"`                // MIDI input port name
	OutPort              string `json:"out_port"`               // MIDI output port name
	MappingFile          string `json:"mapping_file"`           // Optional YAML address map, empty for built-in
	FrameRate            int    `json:"frame_rate"`             // Display flushes per second
	FlushTimeoutMS       int    `json:"flush_timeout_ms"`       // Per bulk write
	EncoderMode          string `json:"encoder_mode"`           // "clamped" or "unbounded"
	ClearOnClose         bool   `json:"clear_on_close"`         // Turn all lights off on exit
	LogLevel             string `json:"log_level"`              // debug, info, warn, error

	path string
}

// Default returns the built-in settings with a fresh ID.
func Default() *Config {
	return &Config{
		ID:             uuid.New().String(),
		InPort:         DefaultPort,
		OutPort:        DefaultPort,
		FrameRate:      60,
		FlushTimeoutMS: 1000,
		EncoderMode:    state.Clamped.String(),
		ClearOnClose:   true,
		LogLevel:       "info",
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-push"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, returning defaults if not found.
// Fields missing from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config back to where it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		p, err := ConfigPath()
		if err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		c.path = p
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0644)
}

// Path returns the file the config is saved to, if known.
func (c *Config) Path() string {
	return c.path
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("frame_rate %d out of range 1..240", c.FrameRate)
	}
	if c.FlushTimeoutMS <= 0 {
		return fmt.Errorf("flush_timeout_ms must be positive, got %d", c.FlushTimeoutMS)
	}
	if _, err := state.ParseEncoderMode(c.EncoderMode); err != nil {
		return fmt.Errorf("encoder_mode: %w", err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses a log level name. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
