package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"expense-client/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepository stores credentials in the local SQLite file
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &CredentialRepository{
		db: db,
	}
}

func (r *CredentialRepository) Get(ctx context.Context, key string) (string, error) {
	var cred models.StoredCredential
	if err := r.db.WithContext(ctx).Where("name = ?", key).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCredentialNotFound
		}
		return "", fmt.Errorf("failed to get credential %s: %w", key, err)
	}
	return cred.Value, nil
}

func (r *CredentialRepository) Set(ctx context.Context, key, value string) error {
	cred := models.StoredCredential{Name: key, Value: value, UpdatedAt: time.Now().UTC()}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&cred).Error
	if err != nil {
		return fmt.Errorf("failed to set credential %s: %w", key, err)
	}
	return nil
}

func (r *CredentialRepository) Remove(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("name = ?", key).Delete(&models.StoredCredential{}).Error; err != nil {
		return fmt.Errorf("failed to remove credential %s: %w", key, err)
	}
	return nil
}

// MemoryCredentialRepository keeps credentials for the life of the process
type MemoryCredentialRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCredentialRepository creates an empty in-memory credential repository
func NewMemoryCredentialRepository() *MemoryCredentialRepository {
	return &MemoryCredentialRepository{values: make(map[string]string)}
}

func (r *MemoryCredentialRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", ErrCredentialNotFound
	}
	return v, nil
}

func (r *MemoryCredentialRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func (r *MemoryCredentialRepository) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

// Keys returns the stored key names
func (r *MemoryCredentialRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	return keys
}
