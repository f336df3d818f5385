package caseclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circegen/circegen/cgerrors"
)

func TestSplitNested(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "no commas", input: "a: Int", want: []string{"a: Int"}},
		{name: "top-level commas", input: "a: Int, b: Int", want: []string{"a: Int", " b: Int"}},
		{name: "square brackets", input: "a: Map[K, V], b: Int", want: []string{"a: Map[K, V]", " b: Int"}},
		{name: "parens", input: "a: (Int, Int), b: Int", want: []string{"a: (Int, Int)", " b: Int"}},
		{name: "braces", input: "a: { def x: (Int, Int) }, b: Int", want: []string{"a: { def x: (Int, Int) }", " b: Int"}},
		{name: "deep nesting", input: "a: F[G[(A, B)], C], b: D", want: []string{"a: F[G[(A, B)], C]", " b: D"}},
		{name: "trailing comma", input: "a: Int,", want: []string{"a: Int", ""}},
		{name: "empty", input: "", want: []string{""}},
		{name: "unbalanced closer", input: "a: Int], b: Int", want: []string{"a: Int]", " b: Int"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitNested(tt.input))
		})
	}
}

func TestSplitMode_Split(t *testing.T) {
	in := "a: Map[K, V], b: Int"
	assert.Equal(t, []string{"a: Map[K", " V]", " b: Int"}, SplitModeFlat.split(in))
	assert.Equal(t, []string{"a: Map[K, V]", " b: Int"}, SplitModeNested.split(in))
}

func TestParseSplitMode(t *testing.T) {
	tests := []struct {
		input   string
		want    SplitMode
		wantErr bool
	}{
		{input: "", want: SplitModeFlat},
		{input: "flat", want: SplitModeFlat},
		{input: "nested", want: SplitModeNested},
		{input: " Nested ", want: SplitModeNested},
		{input: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSplitMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, cgerrors.ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitMode_String(t *testing.T) {
	assert.Equal(t, "flat", SplitModeFlat.String())
	assert.Equal(t, "nested", SplitModeNested.String())
	assert.Equal(t, "unknown", SplitMode(9).String())
}
