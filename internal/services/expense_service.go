package services

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"expense-client/internal/apiclient"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"
	"expense-client/internal/validation"
)

const (
	getExpensesEndpoint        = "expense/v1/getExpense"
	byTypeEndpoint             = "expense/v1/getExpense/by-type"
	byMerchantEndpoint         = "expense/v1/getExpense/by-merchant"
	byMerchantDateEndpoint     = "expense/v1/getExpense/by-merchant-date"
	addExpenseEndpoint         = "expense/v1/addExpense"
	updateExpenseEndpoint      = "expense/v1/updateExpense"
	getUserEndpoint            = "user/v1/getUser"
	parseMessageEndpoint       = "v1/ds/message"
	defaultParseFailureMessage = "Failed to parse SMS message"
)

var authed = apiclient.RequestOptions{RequiresAuth: true}

// ExpenseService wraps the expense endpoints
type ExpenseService struct {
	gateway   apiclient.GatewayInterface
	validator *validation.Validator
	logger    *slog.Logger
}

func NewExpenseService(gateway apiclient.GatewayInterface, logger *slog.Logger) ExpenseServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{
		gateway:   gateway,
		validator: validation.GetValidator(),
		logger:    logger,
	}
}

func (s *ExpenseService) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.gateway.RequestJSON(ctx, http.MethodGet, getExpensesEndpoint, nil, authed, &expenses); err != nil {
		s.logger.ErrorContext(ctx, "error fetching expenses", "error", err)
		return nil, err
	}
	return expenses, nil
}

func (s *ExpenseService) AddExpense(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	if err := s.validator.Struct(expense); err != nil {
		return nil, err
	}

	var created models.Expense
	if err := s.gateway.RequestJSON(ctx, http.MethodPost, addExpenseEndpoint, expense, authed, &created); err != nil {
		s.logger.ErrorContext(ctx, "error adding expense", "error", err)
		return nil, err
	}
	return &created, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	if expense.ExternalID == "" {
		return nil, apperrors.New(apperrors.ExpenseIDRequired)
	}
	if err := s.validator.Struct(expense); err != nil {
		return nil, err
	}

	var updated models.Expense
	if err := s.gateway.RequestJSON(ctx, http.MethodPatch, updateExpenseEndpoint, expense, authed, &updated); err != nil {
		s.logger.ErrorContext(ctx, "error updating expense", "external_id", expense.ExternalID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (s *ExpenseService) GetExpensesByType(ctx context.Context, filter dto.ExpenseTypeFilter) ([]models.Expense, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("transactionType", filter.TransactionType)
	if filter.StartTime != nil {
		q.Set("startTime", models.FormatTimestamp(*filter.StartTime))
	}
	if filter.EndTime != nil {
		q.Set("endTime", models.FormatTimestamp(*filter.EndTime))
	}

	return s.list(ctx, byTypeEndpoint+"?"+q.Encode())
}

// GetExpensesByMerchant uses the date-bounded endpoint only when both bounds are set
func (s *ExpenseService) GetExpensesByMerchant(ctx context.Context, filter dto.ExpenseMerchantFilter) ([]models.Expense, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("merchant", filter.Merchant)
	endpoint := byMerchantEndpoint
	if filter.StartTime != nil && filter.EndTime != nil {
		endpoint = byMerchantDateEndpoint
		q.Set("startTime", models.FormatTimestamp(*filter.StartTime))
		q.Set("endTime", models.FormatTimestamp(*filter.EndTime))
	}

	return s.list(ctx, endpoint+"?"+q.Encode())
}

// GetAnalytics fetches every expense and aggregates locally
func (s *ExpenseService) GetAnalytics(ctx context.Context, window models.DateWindow) (models.AnalyticsSummary, error) {
	expenses, err := s.GetAllExpenses(ctx)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	return Aggregate(expenses, window), nil
}

func (s *ExpenseService) list(ctx context.Context, endpoint string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.gateway.RequestJSON(ctx, http.MethodGet, endpoint, nil, authed, &expenses); err != nil {
		s.logger.ErrorContext(ctx, "error fetching filtered expenses", "endpoint", endpoint, "error", err)
		return nil, err
	}
	return expenses, nil
}
