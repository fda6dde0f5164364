package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateWindow bounds an aggregation. Nil bounds are open; both ends are inclusive.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// Bounded reports whether either end of the window is set
func (w DateWindow) Bounded() bool {
	return w.Start != nil || w.End != nil
}

// Contains reports whether t falls inside the window
func (w DateWindow) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// CategoryBreakdown is one ranked spending bucket
type CategoryBreakdown struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// AnalyticsSummary is derived from a set of expenses and never persisted
type AnalyticsSummary struct {
	TotalExpense decimal.Decimal     `json:"totalExpense"`
	TotalIncome  decimal.Decimal     `json:"totalIncome"`
	NetBalance   decimal.Decimal     `json:"netBalance"`
	Categories   []CategoryBreakdown `json:"categories"`
}

// BudgetLevel is the three-level utilisation classification
type BudgetLevel string

const (
	BudgetGood    BudgetLevel = "Good"
	BudgetWarning BudgetLevel = "Warning"
	BudgetAtRisk  BudgetLevel = "At Risk"
)

// BudgetThresholds are percentages strictly above which a level applies
type BudgetThresholds struct {
	Warning int
	Risk    int
}

// DefaultBudgetThresholds returns 75/90
func DefaultBudgetThresholds() BudgetThresholds {
	return BudgetThresholds{Warning: 75, Risk: 90}
}

// BudgetStatus is the utilisation of a spending limit
type BudgetStatus struct {
	PercentageUsed int         `json:"percentageUsed"`
	Level          BudgetLevel `json:"status"`
}

// BudgetSummary is the home-screen spending card
type BudgetSummary struct {
	Spent             decimal.Decimal `json:"spent"`
	Limit             decimal.Decimal `json:"amountLimit"`
	PercentageUsed    int             `json:"percentageUsed"`
	Status            BudgetLevel     `json:"status"`
	MostSpendCategory string          `json:"mostSpendCategory"`
}

// TrendGranularity selects the bucketing of a TrendSeries
type TrendGranularity string

const (
	TrendDaily   TrendGranularity = "daily"
	TrendWeekly  TrendGranularity = "weekly"
	TrendMonthly TrendGranularity = "monthly"
)

// TrendSeries holds per-bucket income and expense totals for charting
type TrendSeries struct {
	Granularity TrendGranularity  `json:"granularity"`
	Labels      []string          `json:"labels"`
	Income      []decimal.Decimal `json:"income"`
	Expense     []decimal.Decimal `json:"expense"`
}
