package errors

import (
	"errors"
	"fmt"
)

// ClientError is the typed failure returned by the request gateway and the
// session operations. Two ClientErrors match under errors.Is when their codes
// are equal, so the exported sentinels below can be used as comparison targets.
type ClientError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

var (
	ErrAuthenticationRequired  = New(AuthenticationRequired)
	ErrInvalidCredentials      = New(InvalidCredentials)
	ErrSessionExpired          = New(SessionExpired)
	ErrNoActiveSession         = New(NoActiveSession)
	ErrLoginFailed             = New(LoginFailed)
	ErrRegistrationFailed      = New(RegistrationFailed)
	ErrRefreshFailed           = New(RefreshFailed)
	ErrLogoutFailed            = New(LogoutFailed)
	ErrRequestTimeout          = New(RequestTimeout)
	ErrRequestFailed           = New(RequestFailed)
	ErrRequestAborted          = New(RequestAborted)
	ErrNetwork                 = New(NetworkError)
	ErrMalformedServerResponse = New(MalformedServerResponse)
	ErrCircuitOpen             = New(CircuitOpen)
	ErrValidation              = New(ValidationGeneral)
	ErrExpenseIDRequired       = New(ExpenseIDRequired)
	ErrStorage                 = New(StorageFailure)
)

// New creates a ClientError carrying the default message for code
func New(code ErrorCode) *ClientError {
	return &ClientError{Code: code, Message: GetErrorMessage(code)}
}

// Wrap creates a ClientError for code with err as its cause
func Wrap(code ErrorCode, err error) *ClientError {
	return &ClientError{Code: code, Message: GetErrorMessage(code), Err: err}
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewRequestFailed reports a non-2xx response. An empty message falls back to
// "Request failed with status N".
func NewRequestFailed(status int, message string) *ClientError {
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", status)
	}
	return &ClientError{Code: RequestFailed, Status: status, Message: message}
}

// NewLoginFailed reports a rejected login; the body is appended when present
func NewLoginFailed(status int, body string) *ClientError {
	msg := fmt.Sprintf("Login failed (%d)", status)
	if body != "" {
		msg += ": " + body
	}
	return &ClientError{
		Code:    LoginFailed,
		Status:  status,
		Message: msg,
	}
}

func NewRegistrationFailed(status int) *ClientError {
	return &ClientError{
		Code:    RegistrationFailed,
		Status:  status,
		Message: fmt.Sprintf("Registration failed (%d)", status),
	}
}

func NewRefreshFailed(status int) *ClientError {
	return &ClientError{
		Code:    RefreshFailed,
		Status:  status,
		Message: fmt.Sprintf("Token refresh failed (%d)", status),
	}
}

func NewLogoutFailed(status int) *ClientError {
	return &ClientError{
		Code:    LogoutFailed,
		Status:  status,
		Message: fmt.Sprintf("Logout failed on server (%d)", status),
	}
}

// NewMalformedResponse reports a 2xx body that lacks the expected fields
func NewMalformedResponse(detail string) *ClientError {
	return &ClientError{
		Code:    MalformedServerResponse,
		Message: fmt.Sprintf("%s (%s)", GetErrorMessage(MalformedServerResponse), detail),
	}
}

// NewValidationError joins field failures into the message
func NewValidationError(details []string) *ClientError {
	msg := GetErrorMessage(ValidationGeneral)
	for i, d := range details {
		if i == 0 {
			msg += ": " + d
			continue
		}
		msg += "; " + d
	}
	return &ClientError{Code: ValidationGeneral, Message: msg}
}

// CodeOf returns the code of the first ClientError in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}

// StatusOf returns the HTTP status attached to err, or 0
func StatusOf(err error) int {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Status
	}
	return 0
}

// IsAbortOrTimeout reports whether err came from a client-side deadline or
// cancellation rather than from the server
func IsAbortOrTimeout(err error) bool {
	return errors.Is(err, ErrRequestTimeout) || errors.Is(err, ErrRequestAborted)
}

// Result is the uniform outcome handed to presentation code
type Result struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}

// ToResult converts an operation error into a Result
func ToResult(err error) Result {
	if err == nil {
		return Result{Success: true}
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return Result{Success: false, Msg: ce.Message}
	}
	return Result{Success: false, Msg: err.Error()}
}
