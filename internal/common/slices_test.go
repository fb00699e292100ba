package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))

	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = First([]string{})
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestUniqueBy(t *testing.T) {
	got := UniqueBy([]string{"Go", "go", " ", "Rust", "GO", "rust"}, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})

	assert.Equal(t, []string{"Go", "Rust"}, got)
	assert.Nil(t, UniqueBy([]string(nil), strings.ToLower))
}
