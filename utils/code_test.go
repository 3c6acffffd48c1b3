package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRef(t *testing.T) {
	ref := RandomRef(9)
	assert.Len(t, ref, 9)
	assert.Regexp(t, `^[A-Z0-9]{9}$`, ref)

	// Collisions across a handful of draws would indicate a broken generator.
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := RandomRef(9)
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}

	assert.Empty(t, RandomRef(0))
}
