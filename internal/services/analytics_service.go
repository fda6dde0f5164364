package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"expense-client/internal/config"
	"expense-client/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate totals the records inside window and ranks debit categories.
//
// A record with no created_at is always included, whatever the window. One
// whose created_at cannot be parsed is included only when the window is
// unbounded.
func Aggregate(records []models.Expense, window models.DateWindow) models.AnalyticsSummary {
	totalExpense := decimal.Zero
	totalIncome := decimal.Zero
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range records {
		if ts, ok := e.Timestamp(); ok {
			if !window.Contains(ts) {
				continue
			}
		} else if strings.TrimSpace(e.CreatedAt) != "" && window.Bounded() {
			continue
		}

		amount := decimal.NewFromFloat(e.Amount)
		switch {
		case e.IsDebit():
			totalExpense = totalExpense.Add(amount)
			key := e.CategoryKey()
			if _, seen := sums[key]; !seen {
				order = append(order, key)
			}
			sums[key] = sums[key].Add(amount)
		case e.IsCredit():
			totalIncome = totalIncome.Add(amount)
		}
	}

	categories := make([]models.CategoryBreakdown, 0, len(order))
	for _, name := range order {
		categories = append(categories, models.CategoryBreakdown{
			Name:       name,
			Amount:     sums[name],
			Percentage: percentOf(sums[name], totalExpense),
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return models.AnalyticsSummary{
		TotalExpense: totalExpense,
		TotalIncome:  totalIncome,
		NetBalance:   totalIncome.Sub(totalExpense),
		Categories:   categories,
	}
}

// percentOf returns round(100*part/total), or 0 for a non-positive total
func percentOf(part, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	return int(part.Mul(hundred).Div(total).Round(0).IntPart())
}

// ClassifyBudget computes utilisation of limit, capped at 100
func ClassifyBudget(spend, limit decimal.Decimal, thresholds models.BudgetThresholds) models.BudgetStatus {
	pct := percentOf(spend, limit)
	if pct > 100 {
		pct = 100
	}

	level := models.BudgetGood
	switch {
	case pct > thresholds.Risk:
		level = models.BudgetAtRisk
	case pct > thresholds.Warning:
		level = models.BudgetWarning
	}

	return models.BudgetStatus{PercentageUsed: pct, Level: level}
}

// MonthWindow spans the whole calendar month in loc, both ends inclusive
func MonthWindow(year int, month time.Month, loc *time.Location) models.DateWindow {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return models.DateWindow{Start: &start, End: &end}
}

// BudgetPolicy is the monthly limit and thresholds used for budget summaries
type BudgetPolicy struct {
	Limit      decimal.Decimal
	Thresholds models.BudgetThresholds
}

func NewBudgetPolicy(cfg config.BudgetConfig) BudgetPolicy {
	return BudgetPolicy{
		Limit: cfg.MonthlyLimit,
		Thresholds: models.BudgetThresholds{
			Warning: cfg.WarningThreshold,
			Risk:    cfg.RiskThreshold,
		},
	}
}

// Summarize builds the spending card for records inside window
func (p BudgetPolicy) Summarize(records []models.Expense, window models.DateWindow) models.BudgetSummary {
	summary := Aggregate(records, window)
	status := ClassifyBudget(summary.TotalExpense, p.Limit, p.Thresholds)

	most := ""
	if len(summary.Categories) > 0 {
		most = summary.Categories[0].Name
	}

	return models.BudgetSummary{
		Spent:             summary.TotalExpense,
		Limit:             p.Limit,
		PercentageUsed:    status.PercentageUsed,
		Status:            status.Level,
		MostSpendCategory: most,
	}
}

// Trend buckets a month of records for charting. Only timestamped records
// count, and anything not credited counts as expense.
//
// Daily covers the first seven days of the month. Weekly has five buckets,
// with day 29 onward folded into the fifth. Monthly covers the six months
// ending at month.
func Trend(records []models.Expense, year int, month time.Month, loc *time.Location, granularity models.TrendGranularity) (models.TrendSeries, error) {
	if loc == nil {
		loc = time.Local
	}

	var labels []string
	var bucket func(t time.Time) int

	switch granularity {
	case models.TrendDaily:
		days := daysIn(year, month, loc)
		if days > 7 {
			days = 7
		}
		for i := 1; i <= days; i++ {
			labels = append(labels, fmt.Sprintf("%d", i))
		}
		bucket = func(t time.Time) int {
			if t.Year() != year || t.Month() != month || t.Day() > days {
				return -1
			}
			return t.Day() - 1
		}
	case models.TrendWeekly:
		labels = []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}
		bucket = func(t time.Time) int {
			if t.Year() != year || t.Month() != month {
				return -1
			}
			return min((t.Day()-1)/7, 4)
		}
	case models.TrendMonthly:
		first := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -5, 0)
		for i := 0; i < 6; i++ {
			labels = append(labels, first.AddDate(0, i, 0).Format("Jan"))
		}
		bucket = func(t time.Time) int {
			months := (t.Year()-first.Year())*12 + int(t.Month()) - int(first.Month())
			if months < 0 || months > 5 {
				return -1
			}
			return months
		}
	default:
		return models.TrendSeries{}, fmt.Errorf("unknown trend granularity %q", granularity)
	}

	series := models.TrendSeries{
		Granularity: granularity,
		Labels:      labels,
		Income:      zeros(len(labels)),
		Expense:     zeros(len(labels)),
	}

	for _, e := range records {
		ts, ok := e.Timestamp()
		if !ok {
			continue
		}
		i := bucket(ts.In(loc))
		if i < 0 {
			continue
		}
		amount := decimal.NewFromFloat(e.Amount)
		if e.IsCredit() {
			series.Income[i] = series.Income[i].Add(amount)
		} else {
			series.Expense[i] = series.Expense[i].Add(amount)
		}
	}

	return series, nil
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
