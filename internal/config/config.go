package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"uricodec/internal/codec"
)

const (
	// DefaultPath is looked up in the working directory when no --config is given.
	DefaultPath = "uricodec.yaml"
	// EnvPrefix prefixes every environment override, e.g. URICODEC_MODE=uri.
	EnvPrefix = "URICODEC_"
)

// Config holds the editor and CLI settings. Only fields used by this program
// are modeled.
type Config struct {
	Mode      string `koanf:"mode"`       // component|uri
	ColorMode string `koanf:"color_mode"` // auto|dark|light
	NoColor   bool   `koanf:"no_color"`
	Wrap      bool   `koanf:"wrap"`

	LogLevel string `koanf:"log_level"` // debug|info|warn|error
	LogJSON  bool   `koanf:"log_json"`
	LogFile  string `koanf:"log_file"` // editor sessions only
}

// Load merges the YAML file at path with URICODEC_* env vars and fills
// defaults. An empty path falls back to DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// envKey maps URICODEC_COLOR_MODE to color_mode.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func applyDefaults(c *Config) {
	if c.Mode == "" {
		c.Mode = "component"
	}
	if c.ColorMode == "" {
		c.ColorMode = "auto"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(os.TempDir(), "uricodec.log")
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := codec.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config mode: %w", err)
	}
	switch strings.ToLower(c.ColorMode) {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("config color_mode %q not supported (want auto|dark|light)", c.ColorMode)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config log_level %q not supported (want debug|info|warn|error)", c.LogLevel)
	}
	return nil
}

// Codec returns the configured transform mode. Validate has already vetted it.
func (c *Config) Codec() codec.Mode {
	m, _ := codec.ParseMode(c.Mode)
	return m
}
