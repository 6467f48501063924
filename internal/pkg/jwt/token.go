package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// Roles carried by access tokens
const (
	RoleDriver     = "driver"
	RoleOwner      = "owner"
	RoleDispatcher = "dispatcher"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

// Claims are the access-token claims minted by the identity service
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an access token. Production tokens come from the
// identity service; this is used by local tooling and tests.
func GenerateToken(userID uuid.UUID, role string, ttl time.Duration, cfg models.JWTConfig) (string, error) {
	if cfg.Secret == "" {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// ValidateToken verifies signature, expiry and issuer and returns the claims
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	// an empty HMAC key would accept tokens anyone can sign
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, ErrMissingSecret)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	return claims, nil
}
