// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"

	"github.com/circegen/circegen/cgerrors"
)

// Source is one way of supplying input, named by the option that sets it.
type Source struct {
	Option string
	Set    bool
}

// SingleInputSource returns a *cgerrors.ConfigError unless exactly one of
// sources is set.
func SingleInputSource(sources ...Source) error {
	var names, set []string
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &cgerrors.ConfigError{
			Option:  "input",
			Message: fmt.Sprintf("must specify an input source (use %s)", joinOr(names)),
		}
	default:
		return &cgerrors.ConfigError{
			Option:  "input",
			Value:   strings.Join(set, ", "),
			Message: "must specify exactly one input source",
		}
	}
}

// joinOr renders [a b c] as "a, b, or c".
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "an input option"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
