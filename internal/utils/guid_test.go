package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGUIDGenerator_Generate verifies the generator emits parseable,
// distinct UUIDs.
func TestGUIDGenerator_Generate(t *testing.T) {
	g := NewGUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	_, err := uuid.Parse(first)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
