package caseclass

import (
	"strings"

	"github.com/circegen/circegen/cgerrors"
)

// SplitMode selects how bracketed type parameter lists and parenthesized
// field lists are cut into individual entries.
type SplitMode int

const (
	// SplitModeFlat splits on every comma. A field whose type contains a
	// comma, such as Map[String, Int], is cut in two and usually fails with
	// a MalformedField error. This is the default.
	SplitModeFlat SplitMode = iota

	// SplitModeNested splits only on commas outside of (), [] and {}.
	SplitModeNested
)

// String returns the flag spelling of the mode.
func (m SplitMode) String() string {
	switch m {
	case SplitModeFlat:
		return "flat"
	case SplitModeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// ParseSplitMode converts a flag or environment value into a SplitMode.
// The empty string selects SplitModeFlat.
func ParseSplitMode(s string) (SplitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return SplitModeFlat, nil
	case "nested":
		return SplitModeNested, nil
	default:
		return SplitModeFlat, &cgerrors.ConfigError{
			Option:  "split-mode",
			Value:   s,
			Message: "must be one of: flat, nested",
		}
	}
}

// split cuts s into comma-separated entries according to the mode.
// Empty entries are kept so that "A," reports a malformed trailing entry.
func (m SplitMode) split(s string) []string {
	if m == SplitModeNested {
		return splitNested(s)
	}
	return strings.Split(s, ",")
}

// splitNested splits on commas at bracket depth zero.
// Unbalanced closers never drive the depth negative.
func splitNested(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
