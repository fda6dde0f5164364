package services

import (
	"context"
	"errors"
	"fmt"

	"expense-client/internal/models"
	"expense-client/internal/repositories"
)

// TokenStore maps the session credentials onto a key/value repository. The
// three keys are written independently; there is no atomicity across them.
type TokenStore struct {
	repo repositories.CredentialRepositoryInterface
}

func NewTokenStore(repo repositories.CredentialRepositoryInterface) *TokenStore {
	return &TokenStore{repo: repo}
}

func (s *TokenStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if errors.Is(err, repositories.ErrCredentialNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}

func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, models.CredentialAccessToken)
}

func (s *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, models.CredentialRefreshToken)
}

func (s *TokenStore) Username(ctx context.Context) (string, error) {
	return s.get(ctx, models.CredentialUsername)
}

// SetTokens overwrites the access and refresh tokens, leaving the username
func (s *TokenStore) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.repo.Set(ctx, models.CredentialAccessToken, accessToken); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}
	if err := s.repo.Set(ctx, models.CredentialRefreshToken, refreshToken); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) SaveCredentials(ctx context.Context, creds models.Credentials) error {
	if err := s.SetTokens(ctx, creds.AccessToken, creds.RefreshToken); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, models.CredentialUsername, creds.Username); err != nil {
		return fmt.Errorf("failed to store username: %w", err)
	}
	return nil
}

// Load reads all three credentials; missing ones are empty
func (s *TokenStore) Load(ctx context.Context) (models.Credentials, error) {
	var (
		creds models.Credentials
		err   error
	)
	if creds.AccessToken, err = s.AccessToken(ctx); err != nil {
		return creds, err
	}
	if creds.RefreshToken, err = s.RefreshToken(ctx); err != nil {
		return creds, err
	}
	if creds.Username, err = s.Username(ctx); err != nil {
		return creds, err
	}
	return creds, nil
}

// Clear removes every session key, attempting all of them even if one fails
func (s *TokenStore) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range models.CredentialKeys() {
		if err := s.repo.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
