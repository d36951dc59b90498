// Package config loads ngram settings from defaults, an optional config file,
// NGRAM_ environment variables and command line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Defaults compared when no input is given.
const (
	DefaultX = "paraparaparadise"
	DefaultY = "paragraph"
	DefaultN = 3
)

const (
	// EnvPrefix of environment variables, as in NGRAM_N.
	EnvPrefix = "NGRAM"
	// FileName of the config file without extension.
	FileName = "ngram"
)

// Keys.
const (
	KeyX     = "x"
	KeyY     = "y"
	KeyN     = "n"
	KeyDebug = "debug"
)

// ErrInvalidN is returned by Validate for an n-gram length below one.
var ErrInvalidN = errors.New("n must be a positive integer")

// Config holds the strings to compare and the n-gram length.
type Config struct {
	X     string `mapstructure:"x"`
	Y     string `mapstructure:"y"`
	N     int    `mapstructure:"n"`
	Debug bool   `mapstructure:"debug"`
}

// New returns a viper instance with defaults and environment binding set,
// searching paths for a FileName config file.
func New(paths ...string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyX, DefaultX)
	v.SetDefault(KeyY, DefaultY)
	v.SetDefault(KeyN, DefaultN)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return v
}

// Load reads the config file if one exists and returns the validated result.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return cfg, fmt.Errorf("error reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports whether c can be compared.
func (c Config) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("invalid n %d: %w", c.N, ErrInvalidN)
	}
	return nil
}
