package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{name: "with map data", statusCode: http.StatusCreated, message: "Resource created", data: map[string]interface{}{"id": "123"}},
		{name: "with nil data", statusCode: http.StatusOK, message: "Success", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, SuccessResponse(c, tt.statusCode, tt.message, tt.data))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c echo.Context) error
		wantStatus int
		wantError  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "bad field") }, http.StatusBadRequest, "bad field"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"not found", func(c echo.Context) error { return NotFoundResponse(c, "gone") }, http.StatusNotFound, "gone"},
		{"conflict", func(c echo.Context) error { return ConflictResponse(c, "stale", map[string]string{"current": "pending"}) }, http.StatusConflict, "stale"},
		{"unprocessable", func(c echo.Context) error { return UnprocessableEntityResponse(c, "") }, http.StatusUnprocessableEntity, "Unprocessable Entity"},
		{"internal", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal Server Error"},
		{"unavailable", func(c echo.Context) error { return ServiceUnavailableResponse(c, "") }, http.StatusServiceUnavailable, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantError, response.Error)
			assert.Equal(t, tt.wantStatus, response.Code)
		})
	}
}

func TestUUIDParam(t *testing.T) {
	e := echo.New()
	id := uuid.New()

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "valid", value: id.String(), ok: true},
		{name: "garbage", value: "not-a-uuid", ok: false},
		{name: "nil uuid", value: uuid.Nil.String(), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("missionID")
			c.SetParamValues(tt.value)

			got, ok := UUIDParam(c, "missionID")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, id, got)
			}
		})
	}
}
