package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusvales/shoplane-backend/pkg/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "shoplane-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseRoundtrip(t *testing.T) {
	userID := uuid.New()
	jti := uuid.NewString()

	token, err := MintAccessToken(testConfig(), time.Now(), AccessTokenPayload{
		UserID: userID,
		Role:   RoleCustomer,
		JTI:    jti,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(testConfig(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, jti, claims.ID)
}

func TestMintRejectsUnknownRole(t *testing.T) {
	_, err := MintAccessToken(testConfig(), time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   "superuser",
	})
	assert.Error(t, err)
}

func TestMintGeneratesJTIWhenMissing(t *testing.T) {
	token, err := MintAccessToken(testConfig(), time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   RoleAdmin,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(testConfig(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := MintAccessToken(testConfig(), time.Now().Add(-2*time.Hour), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   RoleCustomer,
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(testConfig(), token)
	assert.Error(t, err)
}

func TestParseAllowExpiredAcceptsExpiredToken(t *testing.T) {
	userID := uuid.New()
	token, err := MintAccessToken(testConfig(), time.Now().Add(-2*time.Hour), AccessTokenPayload{
		UserID: userID,
		Role:   RoleCustomer,
	})
	require.NoError(t, err)

	claims, err := ParseAccessTokenAllowExpired(testConfig(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(testConfig(), time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   RoleCustomer,
	})
	require.NoError(t, err)

	other := testConfig()
	other.Secret = "different-secret"
	_, err = ParseAccessToken(other, token)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := testConfig()
	cfg.Issuer = "someone-else"
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   RoleCustomer,
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(testConfig(), token)
	assert.Error(t, err)
}
