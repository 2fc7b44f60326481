package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/hr-admin-service/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, "hr-admin-api", 60)

	token, exp, err := tm.GenerateToken("user-1", "admin@example.com", domain.UserRoleAdmin)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
	assert.Equal(t, "hr-admin-api", claims.Issuer)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte(testSecret), issuer: "hr-admin-api", ttl: -time.Minute}

	token, _, err := tm.GenerateToken("user-1", "admin@example.com", domain.UserRoleAdmin)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, "hr-admin-api", 60)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", "hr-admin-api", 60)

	token, _, err := tm.GenerateToken("user-1", "admin@example.com", domain.UserRoleAdmin)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongIssuer(t *testing.T) {
	tm := NewTokenManager(testSecret, "other-issuer", 60)
	verifier := NewTokenManager(testSecret, "hr-admin-api", 60)

	token, _, err := tm.GenerateToken("user-1", "admin@example.com", domain.UserRoleAdmin)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_DefaultsTTL(t *testing.T) {
	tm := NewTokenManager(testSecret, "hr-admin-api", 0)
	assert.Equal(t, time.Hour, tm.ttl)
}
