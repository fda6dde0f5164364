package repositories

import (
	"context"

	"expense-client/internal/models"

	"github.com/google/uuid"
)

// CredentialRepositoryInterface is the persistent key/value primitive behind
// the token store. Get returns ErrCredentialNotFound for absent keys; Remove
// of an absent key is not an error.
type CredentialRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// UserAccountRepositoryInterface defines the contract for backend user storage
type UserAccountRepositoryInterface interface {
	Create(ctx context.Context, user *models.UserAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*models.UserAccount, error)
}

// ExpenseRecordRepositoryInterface defines the contract for backend expense storage
type ExpenseRecordRepositoryInterface interface {
	Create(ctx context.Context, record *models.ExpenseRecord) error
	Update(ctx context.Context, record *models.ExpenseRecord) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ExpenseRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter models.ExpenseRecordFilter) ([]models.ExpenseRecord, error)
}

// RefreshTokenRepositoryInterface defines the contract for issued refresh tokens
type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
