package jwt

import (
	"testing"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "ridelink",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("user-1", "rider", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", (*claims)["user_id"])
	assert.Equal(t, "rider", (*claims)["role"])
	assert.Equal(t, "ridelink", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("user-1", "rider", cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "test-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Expiration = -1

	token, _, err := GenerateToken("user-1", "rider", cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
