package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/convoy/internal/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "propagates caller id", incoming: "req-123"},
		{name: "generates id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen, fromCtx string
			err := RequestIDMiddleware()(func(c echo.Context) error {
				seen, _ = c.Get(ContextRequestID).(string)
				fromCtx = appctx.GetRequestID(c.Request().Context())
				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
			assert.Equal(t, seen, fromCtx)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
			}
		})
	}
}
