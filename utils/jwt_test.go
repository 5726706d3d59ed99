package utils

import (
	"testing"

	"foodrush/config"
	"foodrush/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(expiry string) {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: expiry,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig("1h")

	token, err := GenerateToken(42, "driver@example.com", models.RoleDriver)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "driver@example.com", claims.Email)
	assert.Equal(t, models.RoleDriver, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	setTestConfig("1h")
	token, err := GenerateToken(1, "a@example.com", models.RoleCustomer)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	setTestConfig("-1h")
	token, err := GenerateToken(1, "a@example.com", models.RoleCustomer)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	setTestConfig("1h")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
