package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasherWithConfig(PasswordConfig{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16})

	encoded, err := h.Hash("s3cret-pass")
	require.NoError(t, err)

	ok, err := h.Verify("s3cret-pass", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("x", "not-a-hash")
	assert.Error(t, err)

	assert.False(t, h.NeedsRehash(encoded))
	assert.True(t, NewPasswordHasher().NeedsRehash(encoded))
}

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	id := uuid.New()

	token, err := tm.Generate(id, "a@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, "a@example.com", claims.Email)

	_, err = NewTokenManager("other", time.Hour).Validate(token)
	assert.Error(t, err)

	expired, err := NewTokenManager("secret", -time.Minute).Generate(id, "a@example.com")
	require.NoError(t, err)
	_, err = tm.Validate(expired)
	assert.Error(t, err)
}

func TestExternalVerifier(t *testing.T) {
	sign := func(secret string, claims Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	v := NewExternalVerifier("idp-secret")
	email, err := v.Email(sign("idp-secret", Claims{Email: "ext@example.com", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}))
	require.NoError(t, err)
	assert.Equal(t, "ext@example.com", email)

	_, err = v.Email(sign("idp-secret", Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}))
	assert.Error(t, err)

	_, err = NewExternalVerifier("").Email("anything")
	assert.ErrorIs(t, err, ErrExternalDisabled)
}
