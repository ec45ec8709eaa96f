package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nightconcept/babelkit/internal/core/registry"
)

const (
	FileName           = "config.toml"
	EnvRegistry        = "BABELKIT_REGISTRY"
	DefaultInitCommand = "npm init -y"
)

// Config holds the user's settings for babelkit.
type Config struct {
	Registry             string `toml:"registry"`
	InitCommand          string `toml:"init_command"`
	LookupTimeoutSeconds int    `toml:"lookup_timeout_seconds,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Registry:    registry.DefaultURL,
		InitCommand: DefaultInitCommand,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", FileName)
	}
	return filepath.Join(dir, "babelkit", FileName)
}

// LookupTimeout is the overall limit for version lookups, zero for none.
func (c *Config) LookupTimeout() time.Duration {
	if c.LookupTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.LookupTimeoutSeconds) * time.Second
}

// Load reads the config file at path. A missing file yields the defaults.
// Unset keys keep their default values and BABELKIT_REGISTRY overrides the
// registry from the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if env := os.Getenv(EnvRegistry); env != "" {
		cfg.Registry = env
	}
	if cfg.Registry == "" {
		cfg.Registry = registry.DefaultURL
	}
	if cfg.InitCommand == "" {
		cfg.InitCommand = DefaultInitCommand
	}
	return cfg, nil
}

// Encode returns cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write marshals cfg and writes it to path, creating parent directories.
// It will overwrite the file if it already exists.
func Write(path string, cfg *Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.Write(data)
	return err
}
