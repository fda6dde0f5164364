package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRecord is the backend-side persisted form of an Expense
type ExpenseRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency        string          `gorm:"type:varchar(8);not null"`
	Merchant        string          `gorm:"type:varchar(255);not null;index"`
	TransactionType string          `gorm:"type:varchar(20);not null;index"`
	Category        string          `gorm:"type:varchar(100)"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (r *ExpenseRecord) TableName() string {
	return "expenses"
}

func (r *ExpenseRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ToExpense renders the record in wire form
func (r *ExpenseRecord) ToExpense() Expense {
	return Expense{
		ExternalID:      r.ID.String(),
		Amount:          r.Amount.InexactFloat64(),
		Currency:        r.Currency,
		Merchant:        r.Merchant,
		TransactionType: r.TransactionType,
		Category:        r.Category,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		UserID:          r.UserID.String(),
	}
}

// ExpenseRecordFilter narrows expense listings. Zero values are ignored.
type ExpenseRecordFilter struct {
	TransactionType string
	Merchant        string
	StartTime       *time.Time
	EndTime         *time.Time
}
