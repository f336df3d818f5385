package caseclass

import (
	"slices"
	"strings"
)

// Declaration is the identity extracted from a case class declaration.
// It is produced once by the parser and never modified afterwards.
type Declaration struct {
	// Name is the class name, e.g. "Person".
	Name string `json:"name" yaml:"name"`
	// TypeParams are the type parameter identifiers in declaration order,
	// with variance markers and bounds stripped.
	TypeParams []string `json:"type_params,omitempty" yaml:"type_params,omitempty"`
	// Fields are the field names in declaration order. Types are discarded
	// and duplicates are kept.
	Fields []string `json:"fields" yaml:"fields"`
}

// IsGeneric reports whether the declaration has any type parameters.
func (d *Declaration) IsGeneric() bool {
	return len(d.TypeParams) > 0
}

// FieldCount returns the number of fields.
func (d *Declaration) FieldCount() int {
	return len(d.Fields)
}

// Equal reports whether two declarations carry the same identity.
func (d *Declaration) Equal(other *Declaration) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Name == other.Name &&
		slices.Equal(d.TypeParams, other.TypeParams) &&
		slices.Equal(d.Fields, other.Fields)
}

// String returns a compact signature such as "Generic[A](something)".
func (d *Declaration) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.IsGeneric() {
		b.WriteByte('[')
		b.WriteString(strings.Join(d.TypeParams, ", "))
		b.WriteByte(']')
	}
	b.WriteByte('(')
	b.WriteString(strings.Join(d.Fields, ", "))
	b.WriteByte(')')
	return b.String()
}
