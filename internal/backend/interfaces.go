package backend

import (
	"context"
	"time"

	"expense-client/internal/dto"
	"expense-client/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface issues and validates RS256 JWTs
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.UserAccount) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface hashes and compares passwords
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface implements the auth/v1 and user/v1 endpoints
type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Authenticate(ctx context.Context, accessToken string) (*models.CustomClaims, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ExpenseServiceInterface implements the expense/v1 and v1/ds endpoints
type ExpenseServiceInterface interface {
	Add(ctx context.Context, userID uuid.UUID, expense models.Expense) (*models.Expense, error)
	Update(ctx context.Context, userID uuid.UUID, expense models.Expense) (*models.Expense, error)
	List(ctx context.Context, userID uuid.UUID, filter models.ExpenseRecordFilter) ([]models.Expense, error)
	RecordMessage(ctx context.Context, userID uuid.UUID, message string) (*models.Expense, error)
}

// MessageParserInterface extracts an expense from a bank SMS
type MessageParserInterface interface {
	Parse(message string) (models.Expense, error)
}

// CategorizerInterface maps a merchant name onto a display category
type CategorizerInterface interface {
	Categorize(merchant string) (string, float64)
}
