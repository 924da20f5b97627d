package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", 7*24*time.Hour)

	token, exp, err := m.Generate("alice", "64b0c3e2a1f4d5e6b7a8c9d0")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "64b0c3e2a1f4d5e6b7a8c9d0", claims.SessionID)
	assert.Equal(t, Issuer, claims.Issuer)
	require.NotNil(t, claims.NotBefore)
	assert.WithinDuration(t, time.Now().UTC(), claims.NotBefore.Time, 5*time.Second)
}

func TestJWTParseRejectsWrongKey(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Hour).Generate("alice", "id")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestJWTParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.Generate("alice", "id")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseRejectsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
