package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-client/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRecordRepository implements ExpenseRecordRepositoryInterface
type expenseRecordRepository struct {
	db *gorm.DB
}

// NewExpenseRecordRepository creates a new expense repository
func NewExpenseRecordRepository(db *gorm.DB) ExpenseRecordRepositoryInterface {
	return &expenseRecordRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRecordRepository) Create(ctx context.Context, record *models.ExpenseRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing expense
func (r *expenseRecordRepository) Update(ctx context.Context, record *models.ExpenseRecord) error {
	result := r.db.WithContext(ctx).
		Model(&models.ExpenseRecord{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]any{
			"amount":           record.Amount,
			"currency":         record.Currency,
			"merchant":         record.Merchant,
			"transaction_type": record.TransactionType,
			"category":         record.Category,
			"created_at":       record.CreatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// GetByID retrieves one of a user's expenses
func (r *expenseRecordRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ExpenseRecord, error) {
	var record models.ExpenseRecord
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &record, nil
}

// List returns a user's expenses, newest first
func (r *expenseRecordRepository) List(ctx context.Context, userID uuid.UUID, filter models.ExpenseRecordFilter) ([]models.ExpenseRecord, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.TransactionType != "" {
		query = query.Where("transaction_type = ?", filter.TransactionType)
	}
	if filter.Merchant != "" {
		query = query.Where("LOWER(merchant) = LOWER(?)", filter.Merchant)
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", filter.StartTime.UTC())
	}
	if filter.EndTime != nil {
		query = query.Where("created_at <= ?", filter.EndTime.UTC())
	}

	var records []models.ExpenseRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return records, nil
}
