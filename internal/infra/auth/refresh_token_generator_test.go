package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenGenerator_Generate(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	raw, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, raw, rawTokenBytes*2)

	_, err = hex.DecodeString(raw)
	assert.NoError(t, err)

	other, err := gen.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, raw, other)
}

func TestRefreshTokenGenerator_HashIsStable(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	hash := gen.Hash("some raw token value")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, gen.Hash("some raw token value"))
	assert.NotEqual(t, hash, gen.Hash("another raw token value"))
	assert.NotEqual(t, "some raw token value", hash)
}
