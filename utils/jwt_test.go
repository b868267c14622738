package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", 1)

	token, err := svc.Issue(map[string]interface{}{"user_id": "abc123"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims["user_id"])
	assert.Contains(t, claims, "exp")
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 1)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", 1)
	verifier := NewTokenService("secret-two", 1)

	token, err := issuer.Issue(map[string]interface{}{"user_id": "abc123"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), ttl: -time.Hour}

	token, err := svc.Issue(map[string]interface{}{"user_id": "abc123"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
