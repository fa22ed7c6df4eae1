package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair(t *testing.T) {
	pair, err := GenerateTokenPair(7, "admin@example.com", "Admin", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := ValidateAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := ValidateRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
	assert.NotEqual(t, claims.ID, refreshClaims.ID, "each token carries its own JTI")
}

func TestTokenTypeEnforced(t *testing.T) {
	pair, err := GenerateTokenPair(1, "a@b.c", "A", true)
	require.NoError(t, err)

	_, err = ValidateAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, ErrWrongTokenUse)

	_, err = ValidateRefreshToken(pair.Access)
	assert.ErrorIs(t, err, ErrWrongTokenUse)
}

func TestGarbageTokenRejected(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ValidateAccessToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestSetSecret(t *testing.T) {
	t.Cleanup(func() { SetSecret("") })

	SetSecret("configured-secret")
	pair, err := GenerateTokenPair(1, "a@b.c", "A", true)
	require.NoError(t, err)

	_, err = ValidateAccessToken(pair.Access)
	require.NoError(t, err)

	// Tokens signed under a different secret stop verifying.
	SetSecret("rotated-secret")
	_, err = ValidateAccessToken(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	pair, err := GenerateTokenPair(1, "a@b.c", "A", true)
	require.NoError(t, err)

	tampered := pair.Access[:len(pair.Access)-2] + "xx"
	_, err = ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
