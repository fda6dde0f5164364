package services

import (
	"context"
	"log/slog"
	"time"

	"expense-client/internal/apiclient"
	"expense-client/internal/models"
)

type AuthLogger struct {
	logger *slog.Logger
}

func NewAuthLogger(logger *slog.Logger) AuthLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthLogger{
		logger: logger,
	}
}

func (al *AuthLogger) LogLoginAttempt(ctx context.Context, username string) {
	al.logger.InfoContext(ctx, "login attempt",
		slog.String("event_type", "login_attempt"),
		slog.String("username", username),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuthLogger) LogLoginSuccess(ctx context.Context, username string, duration time.Duration) {
	al.logger.InfoContext(ctx, "login succeeded",
		slog.String("event_type", "login_success"),
		slog.String("username", username),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuthLogger) LogLoginFailure(ctx context.Context, username string, err error) {
	al.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failure"),
		slog.String("username", username),
		slog.String("error", errorString(err)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuthLogger) LogLogout(ctx context.Context, username string, err error) {
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
	}
	al.logger.Log(ctx, level, "logout",
		slog.String("event_type", "logout"),
		slog.String("username", username),
		slog.String("error", errorString(err)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuthLogger) LogRegistration(ctx context.Context, username string, err error) {
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
	}
	al.logger.Log(ctx, level, "registration",
		slog.String("event_type", "registration"),
		slog.String("username", username),
		slog.String("error", errorString(err)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuthLogger) LogTokenRefresh(ctx context.Context, err error) {
	if err != nil {
		al.logger.WarnContext(ctx, "token refresh failed",
			slog.String("event_type", "token_refresh_failure"),
			slog.String("error", err.Error()),
			slog.String("correlation_id", getCorrelationID(ctx)),
		)
		return
	}
	al.logger.DebugContext(ctx, "token refreshed",
		slog.String("event_type", "token_refresh"),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuthLogger) LogStateChange(ctx context.Context, from, to models.SessionStatus) {
	al.logger.DebugContext(ctx, "session state change",
		slog.String("event_type", "session_state_change"),
		slog.String("old_status", string(from)),
		slog.String("new_status", string(to)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return apiclient.TraceIDFromContext(ctx)
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
