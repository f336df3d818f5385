package caseclass

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("logging does nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		if _, ok := l2.(NopLogger); !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	newAdapter := func() (*SlogAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return NewSlogAdapter(slog.New(handler)), &buf
	}

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.Logger == nil {
			t.Error("adapter.Logger should not be nil")
		}
	})

	t.Run("levels", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.Debug("debug message")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		out := buf.String()
		for _, want := range []string{"level=DEBUG", "level=INFO", "level=WARN", "level=ERROR"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		adapter, buf := newAdapter()
		adapter.With("class", "Person").Debug("extracted fields", "count", 2)

		out := buf.String()
		if !strings.Contains(out, "class=Person") || !strings.Contains(out, "count=2") {
			t.Errorf("expected attributes in output, got: %s", out)
		}
	})
}

func TestParse_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	p := New()
	p.Logger = NewSlogAdapter(slog.New(handler))

	if _, err := p.Parse("case class Generic[A](something: List[A])"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"extracted type parameters", "extracted fields", "class=Generic"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got: %s", want, out)
		}
	}

	buf.Reset()
	if _, err := p.Parse("case class Bad(age Int)"); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "field rejected") {
		t.Errorf("expected rejection to be logged, got: %s", buf.String())
	}
}
