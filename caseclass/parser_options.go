package caseclass

import (
	"fmt"
	"io"

	"github.com/circegen/circegen/cgerrors"
	"github.com/circegen/circegen/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	input  *string
	reader io.Reader
	bytes  []byte

	splitMode    SplitMode
	maxInputSize int64
	logger       Logger
}

// ParseWithOptions parses a case class declaration using functional options.
//
// Example:
//
//	decl, err := caseclass.ParseWithOptions(
//	    caseclass.WithString("case class Pair(left: Map[String, Int], right: Int)"),
//	    caseclass.WithSplitMode(caseclass.SplitModeNested),
//	)
func ParseWithOptions(opts ...Option) (*Declaration, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("caseclass: invalid options: %w", err)
	}

	p := &Parser{
		SplitMode:    cfg.splitMode,
		MaxInputSize: cfg.maxInputSize,
		Logger:       cfg.logger,
	}

	switch {
	case cfg.input != nil:
		return p.Parse(*cfg.input)
	case cfg.reader != nil:
		return p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		return p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("caseclass: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		splitMode:    SplitModeFlat,
		maxInputSize: DefaultMaxInputSize,
		logger:       NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.SingleInputSource(
		options.Source{Option: "WithString", Set: cfg.input != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
		options.Source{Option: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithString specifies the declaration text as the input source
func WithString(input string) Option {
	return func(cfg *parseConfig) error {
		cfg.input = &input
		return nil
	}
}

// WithReader specifies an io.Reader as the input source.
// The whole reader is consumed, up to the configured size limit.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &cgerrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &cgerrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSplitMode selects how type parameter and field lists are split.
// Default: SplitModeFlat
func WithSplitMode(mode SplitMode) Option {
	return func(cfg *parseConfig) error {
		if mode != SplitModeFlat && mode != SplitModeNested {
			return &cgerrors.ConfigError{Option: "split-mode", Value: int(mode), Message: "unknown split mode"}
		}
		cfg.splitMode = mode
		return nil
	}
}

// WithMaxInputSize sets the largest accepted input in bytes.
// Default: DefaultMaxInputSize (1 MiB)
func WithMaxInputSize(n int64) Option {
	return func(cfg *parseConfig) error {
		if n <= 0 {
			return &cgerrors.ConfigError{Option: "max-input-size", Value: n, Message: "must be positive"}
		}
		cfg.maxInputSize = n
		return nil
	}
}

// WithLogger sets the logger for parse diagnostics.
// A nil logger leaves the default NopLogger in place.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}
