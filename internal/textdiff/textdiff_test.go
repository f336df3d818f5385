package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		lines := Lines("a\nb\n", "a\nb\n")
		assert.Equal(t, []Line{{Equal, "a"}, {Equal, "b"}}, lines)
		inserted, deleted := Count(lines)
		assert.Zero(t, inserted)
		assert.Zero(t, deleted)
	})

	t.Run("changed middle line", func(t *testing.T) {
		lines := Lines("object A {\n  old\n}\n", "object A {\n  new\n}\n")
		assert.Equal(t, []Line{
			{Equal, "object A {"},
			{Delete, "  old"},
			{Insert, "  new"},
			{Equal, "}"},
		}, lines)
		inserted, deleted := Count(lines)
		assert.Equal(t, 1, inserted)
		assert.Equal(t, 1, deleted)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		lines := Lines("a\nb", "a\nb\n")
		assert.Equal(t, []Line{{Equal, "a"}, {Delete, "b"}, {Insert, "b"}}, lines)
	})

	t.Run("empty to content", func(t *testing.T) {
		lines := Lines("", "x\n")
		assert.Equal(t, []Line{{Insert, "x"}}, lines)
	})
}

func TestOpPrefix(t *testing.T) {
	assert.Equal(t, " ", Equal.Prefix())
	assert.Equal(t, "-", Delete.Prefix())
	assert.Equal(t, "+", Insert.Prefix())
}
