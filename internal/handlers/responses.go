package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "expense-client/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (4xx with a known code) or
// SendSystemError (500, internal detail logged but not returned).

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// UserIDContextKey holds the authenticated user's uuid.UUID
	UserIDContextKey = "user_id"
	// UsernameContextKey holds the authenticated username
	UsernameContextKey = "username"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apperrors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	errorResponse := apperrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and sends a generic 500 response
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, apperrors.NewErrorResponse(apperrors.SystemInternalError, traceID))
}

// SendValidationError reports a failed request validation. Errors that are
// not a validation ClientError are treated as system errors.
func SendValidationError(c echo.Context, err error) error {
	var ce *apperrors.ClientError
	if errors.As(err, &ce) && ce.Code == apperrors.ValidationGeneral {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage(ce.Message))
	}
	return SendSystemError(c, err)
}
