package cgerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a declaration could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrMalformedDeclaration indicates the outer "case class Name(...)" shape was not found.
	ErrMalformedDeclaration = errors.New("malformed declaration")

	// ErrMalformedTypeParameter indicates a type parameter had no extractable identifier.
	ErrMalformedTypeParameter = errors.New("malformed type parameter")

	// ErrMalformedField indicates a field had no "identifier:" prefix.
	ErrMalformedField = errors.New("malformed field")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ParseErrorKind identifies the parsing stage that failed.
type ParseErrorKind int

const (
	// KindDeclaration is a failure to match the outer declaration shape.
	KindDeclaration ParseErrorKind = iota
	// KindTypeParameter is a failure to extract a type parameter name.
	KindTypeParameter
	// KindField is a failure to extract a field name.
	KindField
)

// String returns the stage name.
func (k ParseErrorKind) String() string {
	switch k {
	case KindDeclaration:
		return "MalformedDeclaration"
	case KindTypeParameter:
		return "MalformedTypeParameter"
	case KindField:
		return "MalformedField"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// sentinel returns the sentinel error matching the kind.
func (k ParseErrorKind) sentinel() error {
	switch k {
	case KindDeclaration:
		return ErrMalformedDeclaration
	case KindTypeParameter:
		return ErrMalformedTypeParameter
	case KindField:
		return ErrMalformedField
	default:
		return nil
	}
}

// ParseError represents a failure to extract data from a case class declaration.
type ParseError struct {
	// Kind is the stage that failed
	Kind ParseErrorKind
	// Fragment is the offending piece of input (may be empty)
	Fragment string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error (" + e.Kind.String() + ")"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Fragment != "" {
		msg += fmt.Sprintf(": %q", e.Fragment)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrParse, and also the sentinel for the error's Kind.
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	if s := e.Kind.sentinel(); s != nil && target == s {
		return true
	}
	return false
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents an input that exceeded a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded, e.g. "input_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
