package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(InvalidCredentials, s.traceID)

	s.Equal("AUTH_002", response.Code)
	s.Equal("Invalid username or password", response.Message)
	s.Equal(s.traceID, response.TraceID)
	s.Empty(response.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	response := NewErrorResponse(
		ExpenseNotFound,
		s.traceID,
		WithMessage("no such expense"),
		WithDetails("external_id: abc"),
	)

	s.Equal("no such expense", response.Message)
	s.Equal([]string{"external_id: abc"}, response.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorResponse() {
	response := NewValidationErrorResponse(map[string]string{"username": "is required"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Code)
	s.Equal([]string{"username: is required"}, response.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{InvalidCredentials, http.StatusUnauthorized},
		{InvalidToken, http.StatusUnauthorized},
		{ExpenseNotFound, http.StatusNotFound},
		{UserAlreadyExists, http.StatusConflict},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestToJSON_RoundTripsThroughExtractMessage() {
	data, err := NewErrorResponse(UserAlreadyExists, s.traceID).ToJSON()
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("USER_001", decoded["code"])
	s.Equal("Username is already taken", ExtractMessage(data))
}

func (s *ResponseTestSuite) TestExtractMessage() {
	s.Equal("bad input", ExtractMessage([]byte(`{"message":"bad input","error":"ignored"}`)))
	s.Equal("Unauthorized", ExtractMessage([]byte(`{"error":"Unauthorized"}`)))
	s.Equal("", ExtractMessage([]byte(`{"status":500}`)))
	s.Equal("", ExtractMessage([]byte(`{"message":{"nested":true}}`)))
	s.Equal("gateway exploded", ExtractMessage([]byte("  gateway exploded\n")))
}
