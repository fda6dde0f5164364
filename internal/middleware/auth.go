package middleware

import (
	"errors"

	"expense-client/internal/backend"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid access token and
// puts the caller's id and username on the context
func RequireAuth(tokenService backend.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthenticationRequired)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.InvalidToken)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, backend.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.SessionExpired)
				}
				return handlers.SendError(c, apperrors.InvalidToken)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apperrors.InvalidToken, apperrors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.UsernameContextKey, claims.Username)

			return next(c)
		}
	}
}
