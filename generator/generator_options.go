package generator

import (
	"fmt"
	"io"

	"github.com/circegen/circegen/caseclass"
	"github.com/circegen/circegen/cgerrors"
	"github.com/circegen/circegen/internal/options"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	input       *string
	bytes       []byte
	reader      io.Reader
	declaration *caseclass.Declaration

	// Parser settings, ignored when a Declaration is supplied
	parseOpts []caseclass.Option
}

// GenerateWithOptions parses a declaration and renders its companion object.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithInput("case class Person(age: Int, favoriteFood: Food)"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Code)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	if cfg.declaration != nil {
		return newResult(cfg.declaration), nil
	}

	parseOpts := make([]caseclass.Option, 0, len(cfg.parseOpts)+1)
	switch {
	case cfg.input != nil:
		parseOpts = append(parseOpts, caseclass.WithString(*cfg.input))
	case cfg.bytes != nil:
		parseOpts = append(parseOpts, caseclass.WithBytes(cfg.bytes))
	case cfg.reader != nil:
		parseOpts = append(parseOpts, caseclass.WithReader(cfg.reader))
	}
	parseOpts = append(parseOpts, cfg.parseOpts...)

	decl, err := caseclass.ParseWithOptions(parseOpts...)
	if err != nil {
		return nil, err
	}
	return newResult(decl), nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.SingleInputSource(
		options.Source{Option: "WithInput", Set: cfg.input != nil},
		options.Source{Option: "WithBytes", Set: cfg.bytes != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
		options.Source{Option: "WithDeclaration", Set: cfg.declaration != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithInput specifies the declaration text as the input source
func WithInput(input string) Option {
	return func(cfg *generateConfig) error {
		cfg.input = &input
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return &cgerrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *generateConfig) error {
		if r == nil {
			return &cgerrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithDeclaration uses an already parsed Declaration as the input source
func WithDeclaration(decl *caseclass.Declaration) Option {
	return func(cfg *generateConfig) error {
		if decl == nil {
			return &cgerrors.ConfigError{Option: "declaration", Message: "declaration cannot be nil"}
		}
		if decl.Name == "" || len(decl.Fields) == 0 {
			return &cgerrors.ConfigError{Option: "declaration", Message: "declaration needs a name and at least one field"}
		}
		cfg.declaration = decl
		return nil
	}
}

// WithSplitMode selects how type parameter and field lists are split.
// Default: caseclass.SplitModeFlat
func WithSplitMode(mode caseclass.SplitMode) Option {
	return func(cfg *generateConfig) error {
		cfg.parseOpts = append(cfg.parseOpts, caseclass.WithSplitMode(mode))
		return nil
	}
}

// WithMaxInputSize sets the largest accepted input in bytes.
func WithMaxInputSize(n int64) Option {
	return func(cfg *generateConfig) error {
		cfg.parseOpts = append(cfg.parseOpts, caseclass.WithMaxInputSize(n))
		return nil
	}
}

// WithLogger sets the logger for parse diagnostics.
func WithLogger(l caseclass.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.parseOpts = append(cfg.parseOpts, caseclass.WithLogger(l))
		return nil
	}
}
