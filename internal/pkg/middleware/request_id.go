package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/convoy/internal/pkg/context"
)

// ContextRequestID is the echo context key holding the request ID
const ContextRequestID = "request_id"

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(ContextRequestID, requestID)
			req := c.Request()
			c.SetRequest(req.WithContext(appctx.WithRequestID(req.Context(), requestID)))

			return next(c)
		}
	}
}
