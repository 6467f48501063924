package utils

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response. Details is only filled on the
// authenticated surface.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    int         `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return ErrorResponseWithDetails(c, statusCode, errorMessage, nil)
}

// ErrorResponseWithDetails sends an error response carrying structured details
func ErrorResponseWithDetails(c echo.Context, statusCode int, errorMessage string, details interface{}) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
		Details: details,
	})
}

func orDefault(msg string, status int) string {
	if msg == "" {
		return http.StatusText(status)
	}
	return msg
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, orDefault(errorMessage, http.StatusBadRequest))
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, orDefault(errorMessage, http.StatusUnauthorized))
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusForbidden, orDefault(errorMessage, http.StatusForbidden))
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, orDefault(errorMessage, http.StatusNotFound))
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string, details interface{}) error {
	return ErrorResponseWithDetails(c, http.StatusConflict, orDefault(errorMessage, http.StatusConflict), details)
}

// UnprocessableEntityResponse sends a 422 response
func UnprocessableEntityResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnprocessableEntity, orDefault(errorMessage, http.StatusUnprocessableEntity))
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, orDefault(errorMessage, http.StatusInternalServerError))
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, orDefault(errorMessage, http.StatusServiceUnavailable))
}

// UUIDParam parses the named path parameter as a UUID
func UUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
