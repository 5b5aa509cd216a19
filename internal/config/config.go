// Package config loads plstr command settings from a YAML file, the
// environment and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// ErrInvalid is returned when a loaded setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the settings of the plstr command.
type Config struct {
	ChunkSize int    `mapstructure:"chunk_size"` // arena chunk size, 0 for the default
	LogLevel  string `mapstructure:"log_level"`
	HashHex   bool   `mapstructure:"hash_hex"` // print hashes in hex instead of decimal
}

// Default returns the settings used when no file or environment
// variable overrides them.
func Default() *Config {
	return &Config{
		ChunkSize: 0,
		LogLevel:  "warn",
		HashHex:   true,
	}
}

// Load reads the config file at path, or plstr.yaml from the working
// directory or $HOME/.plstr when path is empty. A missing default file is
// not an error; a missing explicit one is. PLSTR_* environment variables
// override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("chunk_size", cfg.ChunkSize)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("hash_hex", cfg.HashHex)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("plstr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.plstr")
	}
	v.SetEnvPrefix("PLSTR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings Load cannot check by type alone.
func (c *Config) Validate() error {
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk_size %d is negative", ErrInvalid, c.ChunkSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}

// Level returns the zerolog level named by LogLevel. Call Validate first.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}
