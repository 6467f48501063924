package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/convoy/internal/pkg/logger"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/utils"
)

// PanicRecoveryWithZapMiddleware recovers from handler panics, logs them with
// the stack trace and answers 500 if nothing was written yet.
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()
			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())
	requestID := requestID(c)

	userID := "anonymous"
	if uid := c.Get(ContextUserID); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	txn := nrpkg.FromEchoContext(c)
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": c.Request().Method,
				"http.path":   c.Request().URL.Path,
				"request_id":  requestID,
			},
		})
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		if err := utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request"); err != nil {
			_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
