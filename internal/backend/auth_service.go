package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"expense-client/internal/dto"
	"expense-client/internal/models"
	"expense-client/internal/repositories"

	"github.com/google/uuid"
)

// AuthService handles signup, login and token rotation for the development
// backend
type AuthService struct {
	userRepo         repositories.UserAccountRepositoryInterface
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface
	passwordService  PasswordServiceInterface
	tokenService     TokenServiceInterface
	logger           *slog.Logger
}

func NewAuthService(
	userRepo repositories.UserAccountRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		passwordService:  passwordService,
		tokenService:     tokenService,
		logger:           logger,
	}
}

// Signup creates the account and signs it in
func (s *AuthService) Signup(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.UserAccount{
		Username:     strings.TrimSpace(req.Username),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return s.generateTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "login rejected", "username", req.Username, "reason", "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.InfoContext(ctx, "login rejected", "username", req.Username, "reason", "invalid_password")
		return nil, ErrInvalidCredentials
	}

	return s.generateTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair issued
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, user, err := s.resolveRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to revoke old token",
			"error", err,
			"user_id", user.ID,
			"token_id", stored.ID)
	}

	return s.generateTokens(ctx, user)
}

// Logout revokes every refresh token of the presented token's owner
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	stored, _, err := s.resolveRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := s.refreshTokenRepo.RevokeAllForUser(ctx, stored.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	s.logger.InfoContext(ctx, "user logged out", "user_id", stored.UserID)
	return nil
}

// Authenticate validates an access token
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.CustomClaims, error) {
	return s.tokenService.ValidateAccessToken(accessToken)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *AuthService) resolveRefreshToken(ctx context.Context, refreshToken string) (*models.RefreshToken, *models.UserAccount, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, ErrInvalidRefreshToken
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, models.HashRefreshToken(refreshToken))
	if err != nil || !stored.UsableBy(userID, time.Now()) {
		return nil, nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrInvalidRefreshToken
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	return stored, user, nil
}

func (s *AuthService) generateTokens(ctx context.Context, user *models.UserAccount) (*dto.TokenResponse, error) {
	accessToken, _, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Create(ctx, models.NewRefreshToken(user.ID, refreshToken, refreshExpiresAt)); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		Token:       refreshToken,
		Username:    user.Username,
	}, nil
}
