package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "expense-client/internal/errors"
	"expense-client/internal/metrics"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler formats every error that reaches echo as an
// ErrorResponse, logs it and counts it on recorder
func NewHTTPErrorHandler(recorder metrics.RecorderInterface, logger *slog.Logger) echo.HTTPErrorHandler {
	recorder = metrics.OrNoop(recorder)
	if logger == nil {
		logger = slog.Default()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := toErrorResponse(err, traceID)

		logLevel := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			logLevel = slog.LevelError
		}
		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Code,
			"status", httpStatus,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		recorder.IncrementCounter(metrics.BackendAPIError, map[string]string{
			"code":   errorResponse.Code,
			"status": strconv.Itoa(httpStatus),
		})

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func toErrorResponse(err error, traceID string) (*apperrors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		message := http.StatusText(echoErr.Code)
		if echoErr.Message != nil {
			message = fmt.Sprintf("%v", echoErr.Message)
		}
		resp := apperrors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			apperrors.WithMessage(message),
		)
		resp.Error = message
		return resp, echoErr.Code
	}

	var ce *apperrors.ClientError
	if errors.As(err, &ce) {
		resp := apperrors.NewErrorResponse(ce.Code, traceID, apperrors.WithMessage(ce.Message))
		return resp, resp.GetHTTPStatus()
	}

	return apperrors.NewErrorResponse(apperrors.SystemInternalError, traceID), http.StatusInternalServerError
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return apperrors.ValidationGeneral
	case http.StatusUnauthorized:
		return apperrors.AuthenticationRequired
	case http.StatusNotFound:
		return apperrors.RequestFailed
	case http.StatusTooManyRequests:
		return apperrors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return apperrors.SystemServiceUnavailable
	default:
		return apperrors.SystemInternalError
	}
}
