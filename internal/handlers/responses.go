package handlers

import (
	"log/slog"
	"net/http"

	"debt-tracker/internal/errors"
	"debt-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors (4xx responses)
//    Use cases:
//    - Malformed bodies: SendError(c, errors.RequestMalformedBody)
//    - Snapshot rule violations: SendError(c, errors.PortfolioDuplicateAccountID, errors.WithDetails("..."))
//
// 2. SendValidationError - For validator failures from c.Validate
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Unexpected service errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context, falling back to
// the response header set by the request ID middleware
func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok && traceID != "" {
		return traceID
	}
	return c.Response().Header().Get("X-Trace-ID")
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError reports validator failures field by field. Other
// errors are reported as a general validation failure.
func SendValidationError(c echo.Context, err error) error {
	fieldErrors, ok := validation.FieldMessages(err)
	if !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	errorResponse := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("portfolio request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
