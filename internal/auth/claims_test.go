// File: internal/auth/claims_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekToken_ReadsSubjectAndExpiry(t *testing.T) {
	expires := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "vuhp",
		"exp": expires.Unix(),
	})
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	info, err := PeekToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "vuhp", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(expires))
}

func TestPeekToken_SignatureIsNotChecked(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "anyone"})
	signed, err := token.SignedString([]byte("some-key"))
	require.NoError(t, err)

	// Mangle the signature segment; the claims should still decode.
	mangled := signed[:len(signed)-4] + "AAAA"

	info, err := PeekToken(mangled)
	require.NoError(t, err)
	assert.Equal(t, "anyone", info.Subject)
}

func TestPeekToken_OpaqueTokenFails(t *testing.T) {
	_, err := PeekToken("not-a-jwt")
	assert.Error(t, err)
}

func TestPeekToken_MissingClaimsAreZero(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	info, err := PeekToken(signed)
	require.NoError(t, err)
	assert.Empty(t, info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
}
