package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"expense-client/internal/backend"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the auth/v1 endpoints
type AuthHandler struct {
	authService backend.AuthServiceInterface
}

func NewAuthHandler(authService backend.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "USER_001"
// @Router /auth/v1/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	tokens, err := h.authService.Signup(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrUserAlreadyExists):
			return SendError(c, apperrors.UserAlreadyExists)
		case errors.Is(err, backend.ErrPasswordTooShort), errors.Is(err, backend.ErrPasswordTooLong), errors.Is(err, backend.ErrPasswordEmpty):
			return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Login handles user authentication
// @Summary Login user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /auth/v1/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	tokens, err := h.authService.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			return SendError(c, apperrors.InvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken rotates the token pair
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_009"
// @Router /auth/v1/refreshToken [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	tokens, err := h.authService.Refresh(c.Request().Context(), req.Token)
	if err != nil {
		if errors.Is(err, backend.ErrInvalidRefreshToken) {
			return SendError(c, apperrors.InvalidToken, apperrors.WithMessage("Invalid or expired refresh token"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout revokes the caller's refresh tokens. The response does not reveal
// whether the token was valid.
// @Summary Logout user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} object{message=string}
// @Router /auth/v1/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	if err := h.authService.Logout(c.Request().Context(), req.Token); err != nil {
		slog.InfoContext(c.Request().Context(), "logout with unusable refresh token",
			"trace_id", getTraceID(c),
			"error", err,
		)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Ping reports whether the bearer token is usable. An invalid or expired
// token gets a 401 with an empty body.
// @Summary Session check
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{userId=string,username=string}
// @Failure 401 "empty body"
// @Router /auth/v1/ping [get]
func (h *AuthHandler) Ping(c echo.Context) error {
	parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return c.NoContent(http.StatusUnauthorized)
	}

	claims, err := h.authService.Authenticate(c.Request().Context(), parts[1])
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"userId":   claims.UserID,
		"username": claims.Username,
	})
}
