package caseclass

import (
	"log/slog"
)

// Logger receives the parser's stage-by-stage diagnostics.
//
// Attributes are alternating key-value pairs as in log/slog. The parser only
// logs at debug level, tagging every record after the outer match with the
// class name:
//
//	level=DEBUG msg="extracted fields" class=Person count=2
//
// Any structured logger fits behind it with a thin wrapper; [SlogAdapter]
// covers log/slog.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the parser's default.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter exposes a *slog.Logger as a Logger. The level methods are
// promoted from the embedded logger; only With is rewrapped.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{Logger: logger}
}

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{Logger: s.Logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
