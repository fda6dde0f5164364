package models

import (
	"strings"
	"time"
)

// Transaction directions. Amounts are never negative; direction lives here.
const (
	TransactionDebited  = "debited"
	TransactionCredited = "credited"
)

// Defaults applied to a parsed SMS expense when the parser omits a field
const (
	DefaultMerchant = "Unknown"
	DefaultCurrency = "INR"
)

// Expense is one financial transaction as exchanged with the backend.
// ExternalID is assigned server-side and is the cache identity.
type Expense struct {
	ExternalID      string  `json:"external_id,omitempty"`
	Amount          float64 `json:"amount" validate:"gte=0"`
	Currency        string  `json:"currency" validate:"required,max=8"`
	Merchant        string  `json:"merchant" validate:"required,max=255"`
	TransactionType string  `json:"transaction_type,omitempty" validate:"omitempty,transaction_type"`
	Category        string  `json:"category,omitempty" validate:"omitempty,max=100"`
	CreatedAt       string  `json:"created_at,omitempty" validate:"omitempty,iso_timestamp"`
	UserID          string  `json:"user_id,omitempty"`
}

// IsDebit reports whether the record counts toward spending
func (e Expense) IsDebit() bool {
	return e.TransactionType == TransactionDebited
}

// IsCredit reports whether the record counts toward income
func (e Expense) IsCredit() bool {
	return e.TransactionType == TransactionCredited
}

// CategoryKey is the grouping key: category, then merchant, then "Other"
func (e Expense) CategoryKey() string {
	if e.Category != "" {
		return e.Category
	}
	if e.Merchant != "" {
		return e.Merchant
	}
	return CategoryOther
}

// Timestamp parses CreatedAt. The second result is false when the field is
// empty or unparseable.
func (e Expense) Timestamp() (time.Time, bool) {
	return ParseTimestamp(e.CreatedAt)
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseTimestamp accepts the ISO-8601 forms the backend emits. Date-only
// values are UTC midnight; date-times without an offset are local time.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ApplyParseDefaults fills the fields an SMS parse may leave empty
func (e *Expense) ApplyParseDefaults() {
	if e.Merchant == "" {
		e.Merchant = DefaultMerchant
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	if e.TransactionType == "" {
		e.TransactionType = TransactionDebited
	}
}

// FormatTimestamp renders t the way the backend expects query bounds
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
