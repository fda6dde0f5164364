package handlers

import (
	"errors"
	"net/http"

	"expense-client/internal/backend"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/repositories"

	"github.com/labstack/echo/v4"
)

// UserHandler serves user/v1
type UserHandler struct {
	authService backend.AuthServiceInterface
}

func NewUserHandler(authService backend.AuthServiceInterface) *UserHandler {
	return &UserHandler{authService: authService}
}

// GetUser returns the caller's profile
// @Summary Current user profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 404 {object} errors.ErrorResponse "USER_002"
// @Router /user/v1/getUser [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthenticationRequired)
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, apperrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
