package errors

// ErrorCode represents a standardized error code shared by the client and the
// development backend
type ErrorCode string

// Authentication and session error codes (AUTH_*)
const (
	AuthenticationRequired ErrorCode = "AUTH_001"
	InvalidCredentials     ErrorCode = "AUTH_002"
	SessionExpired         ErrorCode = "AUTH_003"
	NoActiveSession        ErrorCode = "AUTH_004"
	LoginFailed            ErrorCode = "AUTH_005"
	RegistrationFailed     ErrorCode = "AUTH_006"
	RefreshFailed          ErrorCode = "AUTH_007"
	LogoutFailed           ErrorCode = "AUTH_008"
	InvalidToken           ErrorCode = "AUTH_009"
)

// Transport error codes (REQUEST_*)
const (
	RequestTimeout          ErrorCode = "REQUEST_001"
	RequestFailed           ErrorCode = "REQUEST_002"
	RequestAborted          ErrorCode = "REQUEST_003"
	NetworkError            ErrorCode = "REQUEST_004"
	MalformedServerResponse ErrorCode = "REQUEST_005"
	CircuitOpen             ErrorCode = "REQUEST_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral ErrorCode = "VALIDATION_001"
	ExpenseIDRequired ErrorCode = "VALIDATION_002"
)

// Resource error codes used by the development backend
const (
	UserAlreadyExists ErrorCode = "USER_001"
	UserNotFound      ErrorCode = "USER_002"
	ExpenseNotFound   ErrorCode = "EXPENSE_001"
)

// System error codes (SYSTEM_*, STORAGE_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	StorageFailure           ErrorCode = "STORAGE_001"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthenticationRequired: "Authentication required but token is missing",
	InvalidCredentials:     "Invalid username or password",
	SessionExpired:         "Session expired. Please login again.",
	NoActiveSession:        "No active session to logout",
	LoginFailed:            "Login failed",
	RegistrationFailed:     "Registration failed",
	RefreshFailed:          "Token refresh failed",
	LogoutFailed:           "Logout failed on server",
	InvalidToken:           "Invalid or expired token",

	RequestTimeout:          "Request timed out. Server might be unreachable.",
	RequestFailed:           "Request failed",
	RequestAborted:          "Request was aborted",
	NetworkError:            "Network request failed",
	MalformedServerResponse: "Invalid server response",
	CircuitOpen:             "Service temporarily unavailable",

	ValidationGeneral: "Validation failed",
	ExpenseIDRequired: "Expense ID is required for update",

	UserAlreadyExists: "Username is already taken",
	UserNotFound:      "User not found",
	ExpenseNotFound:   "Expense not found",

	SystemInternalError:      "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service unavailable",
	StorageFailure:           "Credential storage error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
