package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestManager() *Manager {
	return NewManager(testSecret, 15*time.Minute, 72*time.Hour)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := newTestManager()

	token, err := manager.GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	manager := newTestManager()

	token, err := manager.GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AccountID)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestValidateToken_WrongType(t *testing.T) {
	manager := newTestManager()

	refresh, err := manager.GenerateRefreshToken(1)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	access, err := manager.GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = manager.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateToken_Expired(t *testing.T) {
	expired := NewManager(testSecret, -1*time.Minute, -1*time.Minute)

	token, err := expired.GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = expired.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	manager := newTestManager()

	_, err := manager.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := newTestManager()
	other := NewManager("another-secret", 15*time.Minute, 72*time.Hour)

	token, err := other.GenerateAccessToken(1)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrMalformedToken)
}
