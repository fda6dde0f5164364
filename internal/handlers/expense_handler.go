package handlers

import (
	"errors"
	"net/http"

	"expense-client/internal/backend"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler serves expense/v1
type ExpenseHandler struct {
	expenseService backend.ExpenseServiceInterface
}

func NewExpenseHandler(expenseService backend.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// GetExpenses lists every expense of the caller, newest first
// @Summary List expenses
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Expense
// @Router /expense/v1/getExpense [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	return h.list(c, models.ExpenseRecordFilter{})
}

// GetExpensesByType filters by transactionType with optional startTime/endTime
// @Summary List expenses by direction
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param transactionType query string true "debited or credited"
// @Param startTime query string false "ISO-8601 lower bound"
// @Param endTime query string false "ISO-8601 upper bound"
// @Success 200 {array} models.Expense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /expense/v1/getExpense/by-type [get]
func (h *ExpenseHandler) GetExpensesByType(c echo.Context) error {
	txType := c.QueryParam("transactionType")
	if txType != models.TransactionDebited && txType != models.TransactionCredited {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("transactionType must be debited or credited"))
	}

	filter, err := timeFilter(c, false)
	if err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	}
	filter.TransactionType = txType
	return h.list(c, filter)
}

// GetExpensesByMerchant filters by merchant, case-insensitively
// @Summary List expenses by merchant
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param merchant query string true "Merchant name"
// @Success 200 {array} models.Expense
// @Router /expense/v1/getExpense/by-merchant [get]
func (h *ExpenseHandler) GetExpensesByMerchant(c echo.Context) error {
	return h.byMerchant(c, false)
}

// GetExpensesByMerchantDate filters by merchant within a required time range
// @Summary List expenses by merchant and date range
// @Tags Expenses
// @Security BearerAuth
// @Produce json
// @Param merchant query string true "Merchant name"
// @Param startTime query string true "ISO-8601 lower bound"
// @Param endTime query string true "ISO-8601 upper bound"
// @Success 200 {array} models.Expense
// @Router /expense/v1/getExpense/by-merchant-date [get]
func (h *ExpenseHandler) GetExpensesByMerchantDate(c echo.Context) error {
	return h.byMerchant(c, true)
}

func (h *ExpenseHandler) byMerchant(c echo.Context, requireRange bool) error {
	merchant := c.QueryParam("merchant")
	if merchant == "" {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("merchant is required"))
	}

	filter, err := timeFilter(c, requireRange)
	if err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	}
	filter.Merchant = merchant
	return h.list(c, filter)
}

// AddExpense stores a new expense and returns it with its external_id
// @Summary Add expense
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Expense true "Expense"
// @Success 200 {object} models.Expense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /expense/v1/addExpense [post]
func (h *ExpenseHandler) AddExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthenticationRequired)
	}

	var expense models.Expense
	if err := c.Bind(&expense); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(expense); err != nil {
		return SendValidationError(c, err)
	}

	created, err := h.expenseService.Add(c.Request().Context(), userID, expense)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// UpdateExpense overwrites the expense named by external_id
// @Summary Update expense
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Expense true "Expense with external_id"
// @Success 200 {object} models.Expense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002"
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001"
// @Router /expense/v1/updateExpense [patch]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthenticationRequired)
	}

	var expense models.Expense
	if err := c.Bind(&expense); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if expense.ExternalID == "" {
		return SendError(c, apperrors.ExpenseIDRequired)
	}
	if err := c.Validate(expense); err != nil {
		return SendValidationError(c, err)
	}

	updated, err := h.expenseService.Update(c.Request().Context(), userID, expense)
	if err != nil {
		if errors.Is(err, backend.ErrExpenseNotFound) {
			return SendError(c, apperrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ExpenseHandler) list(c echo.Context, filter models.ExpenseRecordFilter) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthenticationRequired)
	}

	expenses, err := h.expenseService.List(c.Request().Context(), userID, filter)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, expenses)
}

func timeFilter(c echo.Context, required bool) (models.ExpenseRecordFilter, error) {
	var filter models.ExpenseRecordFilter

	start, err := getTimeParam(c, "startTime")
	if err != nil {
		return filter, err
	}
	end, err := getTimeParam(c, "endTime")
	if err != nil {
		return filter, err
	}
	if required && (start == nil || end == nil) {
		return filter, errors.New("startTime and endTime are required")
	}
	if start != nil && end != nil && end.Before(*start) {
		return filter, errors.New("endTime must not be before startTime")
	}

	filter.StartTime = start
	filter.EndTime = end
	return filter, nil
}
