package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), first.Version())

	second, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first.String(), second.String())
}

func TestUUIDGenerator_FallsBackToRandom(t *testing.T) {
	g := &UUIDGenerator{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock failure")
	}}

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}
