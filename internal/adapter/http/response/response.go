// Package response provides standardized HTTP response builders for the flight offer API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataSourceHeader tells clients whether offers are live or fallback data.
const DataSourceHeader = "X-Data-Source"

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Error is a human-readable error message
	Error string `json:"error"`

	// Code is a machine-readable error code
	Code string `json:"code"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeConfigurationError = "configuration_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgMissingCredentials = "Flight provider credentials are not configured"
	MsgServiceUnavailable = "The flight provider is currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Raw writes body as-is with the given status. Used to proxy provider responses.
func Raw(c echo.Context, statusCode int, body []byte) error {
	return c.JSONBlob(statusCode, body)
}

// SetDataSource sets the X-Data-Source header.
func SetDataSource(c echo.Context, source string) {
	c.Response().Header().Set(DataSourceHeader, source)
}
