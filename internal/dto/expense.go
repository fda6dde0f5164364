package dto

import (
	"time"

	"expense-client/internal/models"
)

// ExpenseTypeFilter selects expenses by direction and optional time range
type ExpenseTypeFilter struct {
	TransactionType string `validate:"required,transaction_type"`
	StartTime       *time.Time
	EndTime         *time.Time
}

// ExpenseMerchantFilter selects expenses by merchant and optional time range
type ExpenseMerchantFilter struct {
	Merchant  string `validate:"required"`
	StartTime *time.Time
	EndTime   *time.Time
}

// ParseMessageRequest is the body of v1/ds/message
type ParseMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// ParseResult is the outcome of sending one SMS body to the parser
type ParseResult struct {
	Success bool            `json:"success"`
	Expense *models.Expense `json:"expense,omitempty"`
	Message string          `json:"message,omitempty"`
}

// SMSEnvelope is the JSON payload of a platform SMS-received event
type SMSEnvelope struct {
	MessageBody       string `json:"messageBody"`
	SenderPhoneNumber string `json:"senderPhoneNumber"`
}
