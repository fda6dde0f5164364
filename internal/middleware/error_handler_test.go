package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "expense-client/internal/errors"
	"expense-client/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	reg     *prometheus.Registry
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.reg = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(metrics.NewPrometheusMetrics(s.reg), nil)
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.handler(err, c)

	var resp apperrors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, resp := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), "test-trace-id")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("test-trace-id", resp.TraceID)
	s.Equal("Resource not found", resp.Message)
	s.Equal("Resource not found", resp.Error)
}

func (s *ErrorHandlerTestSuite) TestClientError() {
	rec, resp := s.handle(&apperrors.ClientError{Code: apperrors.ValidationGeneral, Message: "Validation failed: amount: is required"}, "t1")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", resp.Code)
	s.Equal("Validation failed: amount: is required", resp.Message)
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	rec, resp := s.handle(errors.New("generic error"), "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", resp.Code)
	s.NotContains(rec.Body.String(), "generic error")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	_, resp := s.handle(errors.New("test error"), "")

	s.Equal("unknown", resp.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	s.handler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_001"},
		{http.StatusNotFound, "REQUEST_002"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_002"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec, resp := s.handle(echo.NewHTTPError(tc.status), "test-trace-id")

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, resp.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestUnknownRouteThroughEcho() {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "application/json")
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.handle(echo.NewHTTPError(http.StatusUnauthorized), "")
	s.handle(echo.NewHTTPError(http.StatusUnauthorized), "")

	expected := `
# HELP expense_backend_api_errors_total Total number of error responses written by the development backend
# TYPE expense_backend_api_errors_total counter
expense_backend_api_errors_total{code="AUTH_001",status="401"} 2
`
	s.NoError(testutil.GatherAndCompare(s.reg, strings.NewReader(expected), "expense_backend_api_errors_total"))
}
