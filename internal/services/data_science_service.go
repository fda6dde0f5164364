package services

import (
	"context"
	"log/slog"
	"net/http"

	"expense-client/internal/apiclient"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"
)

// DataScienceService sends SMS bodies to the parsing endpoint
type DataScienceService struct {
	gateway apiclient.GatewayInterface
	logger  *slog.Logger
}

func NewDataScienceService(gateway apiclient.GatewayInterface, logger *slog.Logger) DataScienceServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataScienceService{gateway: gateway, logger: logger}
}

// ParseSMSMessage never returns an error; failures are reported in the result
func (s *DataScienceService) ParseSMSMessage(ctx context.Context, message string) dto.ParseResult {
	var parsed models.Expense
	err := s.gateway.RequestJSON(ctx, http.MethodPost, parseMessageEndpoint, dto.ParseMessageRequest{Message: message}, authed, &parsed)
	if err != nil {
		s.logger.WarnContext(ctx, "sms parsing error", "error", err)
		msg := apperrors.ToResult(err).Msg
		if msg == "" {
			msg = defaultParseFailureMessage
		}
		return dto.ParseResult{Success: false, Message: msg}
	}

	parsed.ApplyParseDefaults()
	return dto.ParseResult{Success: true, Expense: &parsed}
}
