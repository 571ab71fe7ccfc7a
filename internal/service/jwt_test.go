package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	old := jwtSecret
	jwtSecret = []byte("test-secret")
	t.Cleanup(func() { jwtSecret = old })
}

func TestGenerateParseRoundtrip(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateToken("a@x.com")
	require.NoError(t, err)

	sub, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", sub)
}

func TestParseExpiredToken(t *testing.T) {
	setTestSecret(t)

	// correctly signed but already expired
	claims := jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateToken("a@x.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	setTestSecret(t)

	claims := jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMissingExpRejected(t *testing.T) {
	setTestSecret(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a@x.com"}).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMissingSubjectRejected(t *testing.T) {
	setTestSecret(t)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	setTestSecret(t)

	for _, s := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseToken(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
