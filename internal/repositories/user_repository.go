package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense-client/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserAccountRepository handles database operations for backend users
type UserAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository creates a new user repository
func NewUserAccountRepository(db *gorm.DB) UserAccountRepositoryInterface {
	return &UserAccountRepository{
		db: db,
	}
}

// Create creates a new user in the database
func (r *UserAccountRepository) Create(ctx context.Context, user *models.UserAccount) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *UserAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserAccount, error) {
	user := &models.UserAccount{ID: id}
	if err := r.db.WithContext(ctx).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *UserAccountRepository) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	var user models.UserAccount

	if err := r.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "duplicate key")
}
