package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.NoError(t, ComparePassword(hashed, "password123"))
	assert.Error(t, ComparePassword(hashed, "wrongpassword"))
}
