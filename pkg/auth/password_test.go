package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainSchemeStoresVerbatim(t *testing.T) {
	scheme := PlainScheme{}

	encoded, err := scheme.Encode("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", encoded)

	assert.True(t, scheme.Matches("secret", "secret"))
	assert.False(t, scheme.Matches("secret", "Secret"))
}

func TestBcryptSchemeHashes(t *testing.T) {
	scheme := BcryptScheme{}

	encoded, err := scheme.Encode("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", encoded)

	assert.True(t, scheme.Matches(encoded, "secret"))
	assert.False(t, scheme.Matches(encoded, "wrong"))
}

func TestSchemeFromName(t *testing.T) {
	assert.IsType(t, BcryptScheme{}, SchemeFromName("bcrypt"))
	assert.IsType(t, PlainScheme{}, SchemeFromName(""))
	assert.IsType(t, PlainScheme{}, SchemeFromName("plain"))
}
