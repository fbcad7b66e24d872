package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bistroboss/models"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{UID: "uid-1", Email: "alice@example.com", Role: models.RoleAdmin}

	tok, err := Generate(user, secret, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(tok, secret)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &models.User{UID: "uid-1", Email: "a@b.com", Role: models.RoleUser}

	tok, err := Generate(user, []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = Parse(tok, []byte("secret-b"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{UID: "uid-1", Email: "a@b.com", Role: models.RoleUser}

	tok, err := Generate(user, secret, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", []byte("secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}
