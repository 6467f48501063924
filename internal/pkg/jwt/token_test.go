package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = models.JWTConfig{Secret: "test-secret", Issuer: "convoy-identity"}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, RoleDriver, time.Hour, testCfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testCfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RoleDriver, claims.Role)
}

func TestValidateToken_Failures(t *testing.T) {
	userID := uuid.New()
	expired, _ := GenerateToken(userID, RoleDriver, -time.Minute, testCfg)
	otherIssuer, _ := GenerateToken(userID, RoleDriver, time.Hour, models.JWTConfig{Secret: testCfg.Secret, Issuer: "someone-else"})
	wrongSecret, _ := GenerateToken(userID, RoleDriver, time.Hour, models.JWTConfig{Secret: "nope", Issuer: testCfg.Issuer})
	noUser, _ := GenerateToken(uuid.Nil, RoleDriver, time.Hour, testCfg)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: userID}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"expired":      expired,
		"issuer":       otherIssuer,
		"wrong secret": wrongSecret,
		"no user":      noUser,
		"alg none":     none,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := ValidateToken(token, testCfg)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestEmptySecretIsRejected(t *testing.T) {
	_, err := GenerateToken(uuid.New(), RoleDriver, time.Hour, models.JWTConfig{})
	assert.ErrorIs(t, err, ErrMissingSecret)

	// a token signed with an empty key must not validate against an unset secret
	claims := Claims{
		UserID: uuid.New(),
		Role:   RoleDispatcher,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = ValidateToken(forged, models.JWTConfig{})
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, ErrMissingSecret)
}
