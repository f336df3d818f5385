package cgerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Kind:     KindField,
			Fragment: "age Int",
			Message:  "field has no identifier followed by a colon",
			Cause:    cause,
		}

		msg := err.Error()
		want := `parse error (MalformedField): field has no identifier followed by a colon: "age Int": underlying error`
		if msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error (MalformedDeclaration)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse and kind sentinel", func(t *testing.T) {
		tests := []struct {
			kind     ParseErrorKind
			sentinel error
		}{
			{KindDeclaration, ErrMalformedDeclaration},
			{KindTypeParameter, ErrMalformedTypeParameter},
			{KindField, ErrMalformedField},
		}
		for _, tt := range tests {
			err := &ParseError{Kind: tt.kind}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%s should match ErrParse", tt.kind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("%s should match its sentinel", tt.kind)
			}
		}
	})

	t.Run("Is does not match other kinds", func(t *testing.T) {
		err := &ParseError{Kind: KindField}
		if errors.Is(err, ErrMalformedDeclaration) {
			t.Error("field error should not match ErrMalformedDeclaration")
		}
		if errors.Is(err, ErrMalformedTypeParameter) {
			t.Error("field error should not match ErrMalformedTypeParameter")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Kind: KindTypeParameter, Fragment: "<: B"})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Kind != KindTypeParameter {
			t.Errorf("unexpected kind: %s", parseErr.Kind)
		}
		if parseErr.Fragment != "<: B" {
			t.Errorf("unexpected fragment: %s", parseErr.Fragment)
		}
	})
}

func TestParseErrorKindString(t *testing.T) {
	if got := ParseErrorKind(42).String(); got != "ParseErrorKind(42)" {
		t.Errorf("unexpected string for unknown kind: %s", got)
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "split-mode",
			Value:   "sideways",
			Message: "must be flat or nested",
		}
		expected := "configuration error for split-mode (value: sideways): must be flat or nested"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
		if errors.Is(err, ErrParse) {
			t.Error("ConfigError should not match ErrParse")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("env: bad value")
		err := &ConfigError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("ConfigError should unwrap to cause")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "input_size", Limit: 10, Actual: 12}
	if err.Error() != "resource limit exceeded: input_size (limit: 10, actual: 12)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("ResourceLimitError should match ErrResourceLimit")
	}
}
