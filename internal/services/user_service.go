package services

import (
	"context"
	"net/http"

	"expense-client/internal/apiclient"
	"expense-client/internal/models"
)

// UserService wraps the profile endpoint
type UserService struct {
	gateway apiclient.GatewayInterface
}

func NewUserService(gateway apiclient.GatewayInterface) UserServiceInterface {
	return &UserService{gateway: gateway}
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.gateway.RequestJSON(ctx, http.MethodGet, getUserEndpoint, nil, authed, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
