package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/convoy/internal/pkg/context"
	jwtpkg "github.com/piresc/convoy/internal/pkg/jwt"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// accessTokenQueryParam lets browsers authenticate websocket upgrades, which
// cannot carry an Authorization header.
const accessTokenQueryParam = "access_token"

// JWTAuthMiddleware validates the bearer token and stores the caller's id and
// role in the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config)
			if err != nil {
				logger.Debug("Rejected access token",
					logger.String("path", c.Path()),
					logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)
			req := c.Request()
			c.SetRequest(req.WithContext(appctx.WithUserID(req.Context(), claims.UserID)))
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if c.IsWebSocket() {
		if token := c.QueryParam(accessTokenQueryParam); token != "" {
			return token, true
		}
	}
	return "", false
}

// RequireRole rejects callers whose token role is not one of roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(string)
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// UserID returns the authenticated caller, or uuid.Nil
func UserID(c echo.Context) uuid.UUID {
	id, _ := c.Get(ContextUserID).(uuid.UUID)
	return id
}
