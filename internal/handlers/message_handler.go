package handlers

import (
	"errors"
	"net/http"

	"expense-client/internal/backend"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"

	"github.com/labstack/echo/v4"
)

// MessageHandler serves v1/ds
type MessageHandler struct {
	expenseService backend.ExpenseServiceInterface
}

func NewMessageHandler(expenseService backend.ExpenseServiceInterface) *MessageHandler {
	return &MessageHandler{expenseService: expenseService}
}

// ParseMessage extracts an expense from an SMS body and stores it
// @Summary Parse SMS
// @Tags Data Science
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ParseMessageRequest true "SMS body"
// @Success 200 {object} models.Expense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /v1/ds/message [post]
func (h *MessageHandler) ParseMessage(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthenticationRequired)
	}

	var req dto.ParseMessageRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	expense, err := h.expenseService.RecordMessage(c.Request().Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, backend.ErrUnparseableMessage) {
			return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Message does not describe a transaction"))
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, expense)
}
