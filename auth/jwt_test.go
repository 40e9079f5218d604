package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestJWTVerifierAcceptsValidToken(t *testing.T) {
	secret := []byte("test-secret")
	verifier := NewJWTVerifier(secret)

	token := signToken(t, secret, jwt.MapClaims{"sub": "user-1", "email": "user@example.com"})

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.ExternalID)
	assert.Equal(t, "user@example.com", identity.Email)
}

func TestJWTVerifierRejectsBadTokens(t *testing.T) {
	secret := []byte("test-secret")
	verifier := NewJWTVerifier(secret)

	// Wrong signing secret
	wrong := signToken(t, []byte("other-secret"), jwt.MapClaims{"sub": "user-1"})
	_, err := verifier.Verify(context.Background(), wrong)
	assert.Error(t, err)

	// Missing subject
	noSub := signToken(t, secret, jwt.MapClaims{"email": "user@example.com"})
	_, err = verifier.Verify(context.Background(), noSub)
	assert.Error(t, err)

	// Not a token at all
	_, err = verifier.Verify(context.Background(), "garbage")
	assert.Error(t, err)
}

func TestJWTVerifierEmailOptional(t *testing.T) {
	secret := []byte("test-secret")
	verifier := NewJWTVerifier(secret)

	token := signToken(t, secret, jwt.MapClaims{"sub": "user-2"})

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-2", identity.ExternalID)
	assert.Empty(t, identity.Email)
}
