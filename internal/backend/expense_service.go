package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-client/internal/metrics"
	"expense-client/internal/models"
	"expense-client/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService stores expenses per user. Timestamps are kept in UTC.
type ExpenseService struct {
	repo    repositories.ExpenseRecordRepositoryInterface
	parser  MessageParserInterface
	metrics metrics.RecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

func NewExpenseService(
	repo repositories.ExpenseRecordRepositoryInterface,
	parser MessageParserInterface,
	recorder metrics.RecorderInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{
		repo:    repo,
		parser:  parser,
		metrics: metrics.OrNoop(recorder),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *ExpenseService) Add(ctx context.Context, userID uuid.UUID, expense models.Expense) (*models.Expense, error) {
	return s.create(ctx, userID, expense, "api")
}

// Update overwrites the stored fields of the expense named by ExternalID.
// An empty created_at keeps the stored timestamp.
func (s *ExpenseService) Update(ctx context.Context, userID uuid.UUID, expense models.Expense) (*models.Expense, error) {
	id, err := uuid.Parse(expense.ExternalID)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	record, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	if err := applyExpense(record, expense, record.CreatedAt); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	out := record.ToExpense()
	return &out, nil
}

func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID, filter models.ExpenseRecordFilter) ([]models.Expense, error) {
	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	out := make([]models.Expense, 0, len(records))
	for i := range records {
		out = append(out, records[i].ToExpense())
	}
	return out, nil
}

// RecordMessage parses an SMS and stores the resulting expense
func (s *ExpenseService) RecordMessage(ctx context.Context, userID uuid.UUID, message string) (*models.Expense, error) {
	expense, err := s.parser.Parse(message)
	if err != nil {
		s.logger.InfoContext(ctx, "sms not recognised", "user_id", userID, "error", err)
		return nil, err
	}
	return s.create(ctx, userID, expense, "sms")
}

func (s *ExpenseService) create(ctx context.Context, userID uuid.UUID, expense models.Expense, source string) (*models.Expense, error) {
	record := &models.ExpenseRecord{UserID: userID}
	if err := applyExpense(record, expense, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.metrics.IncrementCounter(metrics.BackendExpensesRecorded, map[string]string{"source": source})
	out := record.ToExpense()
	return &out, nil
}

// applyExpense copies wire fields onto record; fallback is used when
// created_at is empty
func applyExpense(record *models.ExpenseRecord, expense models.Expense, fallback time.Time) error {
	createdAt := fallback
	if expense.CreatedAt != "" {
		ts, ok := expense.Timestamp()
		if !ok {
			return fmt.Errorf("invalid created_at %q", expense.CreatedAt)
		}
		createdAt = ts
	}

	txType := expense.TransactionType
	if txType == "" {
		txType = models.TransactionDebited
	}
	currency := expense.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	record.Amount = decimal.NewFromFloat(expense.Amount).Round(2)
	record.Currency = currency
	record.Merchant = expense.Merchant
	record.TransactionType = txType
	record.Category = expense.Category
	record.CreatedAt = createdAt.UTC()
	return nil
}
