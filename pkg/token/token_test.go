package token_test

import (
	"testing"

	"go-admin-console/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tm := token.NewTokenManager("test-secret", 24)

	tokenStr, err := tm.GenerateToken("admin-1", "admin@example.com", "backend-token")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenStr)

	session, err := tm.ValidateToken(tokenStr)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", session.AdminID)
	assert.Equal(t, "admin@example.com", session.Email)
	assert.Equal(t, "backend-token", session.BackendToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tm := token.NewTokenManager("test-secret", 24)
	other := token.NewTokenManager("other-secret", 24)

	tokenStr, err := tm.GenerateToken("admin-1", "admin@example.com", "backend-token")
	assert.NoError(t, err)

	_, err = other.ValidateToken(tokenStr)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	tm := token.NewTokenManager("test-secret", -1)

	tokenStr, err := tm.GenerateToken("admin-1", "admin@example.com", "backend-token")
	assert.NoError(t, err)

	_, err = tm.ValidateToken(tokenStr)
	assert.Error(t, err)
}
