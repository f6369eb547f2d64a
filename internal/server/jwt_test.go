package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshanviChauhan/Interview-Bot/internal/config"
)

func testJWTService(hours int) *JWTService {
	return NewJWTService(&config.AuthConfig{
		JWTSecret:       "test-secret",
		ExpirationHours: hours,
		BcryptCost:      10,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(24)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Empty(t *testing.T) {
	_, err := testJWTService(24).ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService(24).GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.AuthConfig{JWTSecret: "different", ExpirationHours: 24, BcryptCost: 10})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := testJWTService(24).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	// token signed with "none" must be rejected
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = testJWTService(24).ValidateToken(tokenString)
	assert.Error(t, err)
}
