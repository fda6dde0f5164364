package handlers

import (
	"fmt"
	"time"

	"expense-client/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the id set by the auth middleware
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// getTimeParam parses an optional ISO-8601 query parameter
func getTimeParam(c echo.Context, name string) (*time.Time, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}
	t, ok := models.ParseTimestamp(value)
	if !ok {
		return nil, fmt.Errorf("%s must be an ISO-8601 timestamp", name)
	}
	return &t, nil
}
