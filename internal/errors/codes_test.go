package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Authentication Required", code: AuthenticationRequired, expected: "Authentication required but token is missing"},
		{name: "Invalid Credentials", code: InvalidCredentials, expected: "Invalid username or password"},
		{name: "No Active Session", code: NoActiveSession, expected: "No active session to logout"},
		{name: "Request Timeout", code: RequestTimeout, expected: "Request timed out. Server might be unreachable."},
		{name: "Expense ID Required", code: ExpenseIDRequired, expected: "Expense ID is required for update"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(SessionExpired))
	s.True(IsValidErrorCode(CircuitOpen))
	s.False(IsValidErrorCode(ErrorCode("")))
}

func (s *CodesTestSuite) TestAllCodesHaveMessages() {
	codes := []ErrorCode{
		AuthenticationRequired, InvalidCredentials, SessionExpired, NoActiveSession,
		LoginFailed, RegistrationFailed, RefreshFailed, LogoutFailed, InvalidToken,
		RequestTimeout, RequestFailed, RequestAborted, NetworkError,
		MalformedServerResponse, CircuitOpen, ValidationGeneral, ExpenseIDRequired,
		UserAlreadyExists, UserNotFound, ExpenseNotFound,
		SystemInternalError, SystemRateLimitExceeded, SystemServiceUnavailable, StorageFailure,
	}
	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		s.True(IsValidErrorCode(code), string(code))
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
