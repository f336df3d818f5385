package caseclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclaration_IsGeneric(t *testing.T) {
	assert.False(t, (&Declaration{Name: "Person", Fields: []string{"age"}}).IsGeneric())
	assert.False(t, (&Declaration{Name: "Person", TypeParams: []string{}, Fields: []string{"age"}}).IsGeneric())
	assert.True(t, (&Declaration{Name: "Box", TypeParams: []string{"A"}, Fields: []string{"value"}}).IsGeneric())
}

func TestDeclaration_String(t *testing.T) {
	tests := []struct {
		decl *Declaration
		want string
	}{
		{&Declaration{Name: "Person", Fields: []string{"age", "favoriteFood"}}, "Person(age, favoriteFood)"},
		{&Declaration{Name: "Pair", TypeParams: []string{"A", "B"}, Fields: []string{"left", "right"}}, "Pair[A, B](left, right)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.decl.String())
	}
}

func TestDeclaration_Equal(t *testing.T) {
	a := &Declaration{Name: "Person", Fields: []string{"age"}}
	b := &Declaration{Name: "Person", TypeParams: []string{}, Fields: []string{"age"}}
	c := &Declaration{Name: "Person", Fields: []string{"age", "name"}}

	assert.True(t, a.Equal(b), "nil and empty type params are equal")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*Declaration)(nil).Equal(nil))
	assert.Equal(t, 2, c.FieldCount())
}
