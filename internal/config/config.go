// Package config loads circegen defaults from CIRCEGEN_* environment variables.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/circegen/circegen/caseclass"
	"github.com/circegen/circegen/cgerrors"
)

// Config holds defaults shared by the CLI and the MCP server.
// Command-line flags take precedence over these values.
type Config struct {
	// SplitMode is "flat" or "nested".
	SplitMode string `env:"CIRCEGEN_SPLIT_MODE" envDefault:"flat"`
	// MaxInputSize is the largest accepted declaration in bytes.
	MaxInputSize int64 `env:"CIRCEGEN_MAX_INPUT_SIZE" envDefault:"1048576"`
	// NoColor disables colored CLI output even on a terminal.
	NoColor bool `env:"CIRCEGEN_NO_COLOR"`
	// Verbose enables debug logging to stderr.
	Verbose bool `env:"CIRCEGEN_VERBOSE"`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, &cgerrors.ConfigError{Option: "environment", Message: "parse env", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that the env tags cannot express.
func (c *Config) Validate() error {
	if _, err := caseclass.ParseSplitMode(c.SplitMode); err != nil {
		return err
	}
	if c.MaxInputSize <= 0 {
		return &cgerrors.ConfigError{
			Option:  "CIRCEGEN_MAX_INPUT_SIZE",
			Value:   c.MaxInputSize,
			Message: "must be positive",
		}
	}
	return nil
}

// Mode returns the parsed split mode. Call Validate first.
func (c *Config) Mode() caseclass.SplitMode {
	mode, _ := caseclass.ParseSplitMode(c.SplitMode)
	return mode
}

// ParseOptions returns the caseclass options implied by the configuration.
func (c *Config) ParseOptions() []caseclass.Option {
	return []caseclass.Option{
		caseclass.WithSplitMode(c.Mode()),
		caseclass.WithMaxInputSize(c.MaxInputSize),
	}
}
