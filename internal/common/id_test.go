package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDGenerator(t *testing.T) {
	gen := NewIDGenerator("p_")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen()
		assert.True(t, strings.HasPrefix(id, "p_"))
		assert.False(t, seen[id], "generator produced a duplicate id")
		seen[id] = true
	}
}
