package services

import (
	"context"
	"time"

	"expense-client/internal/dto"
	"expense-client/internal/models"
)

// TokenStoreInterface persists the three session credentials. Absent values
// read back as "".
type TokenStoreInterface interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	SaveCredentials(ctx context.Context, creds models.Credentials) error
	Load(ctx context.Context) (models.Credentials, error)
	Clear(ctx context.Context) error
}

// SessionStoreInterface is the observable holder of the current session state
type SessionStoreInterface interface {
	Current() models.SessionState
	Subscribe(fn func(models.SessionState)) (unsubscribe func())
}

// SessionServiceInterface drives the authentication state machine
type SessionServiceInterface interface {
	CheckSession(ctx context.Context) models.SessionState
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, req dto.RegisterRequest) error
	RefreshToken(ctx context.Context) error
	State() models.SessionState
}

// ExpenseServiceInterface wraps the expense endpoints
type ExpenseServiceInterface interface {
	GetAllExpenses(ctx context.Context) ([]models.Expense, error)
	AddExpense(ctx context.Context, expense models.Expense) (*models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense) (*models.Expense, error)
	GetExpensesByType(ctx context.Context, filter dto.ExpenseTypeFilter) ([]models.Expense, error)
	GetExpensesByMerchant(ctx context.Context, filter dto.ExpenseMerchantFilter) ([]models.Expense, error)
	GetAnalytics(ctx context.Context, window models.DateWindow) (models.AnalyticsSummary, error)
}

// UserServiceInterface wraps the profile endpoint
type UserServiceInterface interface {
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

// DataScienceServiceInterface wraps the SMS parsing endpoint
type DataScienceServiceInterface interface {
	ParseSMSMessage(ctx context.Context, message string) dto.ParseResult
}

// ExpenseCacheInterface is the in-memory expense list shared by the screens
type ExpenseCacheInterface interface {
	Refresh(ctx context.Context) error
	Add(ctx context.Context, expense models.Expense) (*models.Expense, error)
	Update(ctx context.Context, expense models.Expense) (*models.Expense, error)
	List() []models.Expense
	Analytics(window models.DateWindow) models.AnalyticsSummary
	Snapshot() models.CacheSnapshot
}

// SMSEventSource delivers raw platform SMS events. The returned func removes
// the handler.
type SMSEventSource interface {
	Subscribe(handler func(payload string)) (remove func())
}

// PermissionRequester asks the platform for SMS receive permission
type PermissionRequester interface {
	RequestSMSPermission(ctx context.Context) models.PermissionResult
}

// AuthLoggerInterface records session events
type AuthLoggerInterface interface {
	LogLoginAttempt(ctx context.Context, username string)
	LogLoginSuccess(ctx context.Context, username string, duration time.Duration)
	LogLoginFailure(ctx context.Context, username string, err error)
	LogLogout(ctx context.Context, username string, err error)
	LogRegistration(ctx context.Context, username string, err error)
	LogTokenRefresh(ctx context.Context, err error)
	LogStateChange(ctx context.Context, from, to models.SessionStatus)
}
