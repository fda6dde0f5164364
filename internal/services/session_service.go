package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"expense-client/internal/apiclient"
	"expense-client/internal/config"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/metrics"
	"expense-client/internal/models"
	"expense-client/internal/validation"
)

const (
	loginEndpoint   = "auth/v1/login"
	signupEndpoint  = "auth/v1/signup"
	refreshEndpoint = "auth/v1/refreshToken"
	logoutEndpoint  = "auth/v1/logout"
	pingEndpoint    = "auth/v1/ping"
)

var _ SessionServiceInterface = (*SessionService)(nil)

// SessionService is the only writer of the session store. Its exported
// operations are serialised by mu; cascades (refresh failing into logout,
// startup check into refresh) call the unexported *Locked variants.
type SessionService struct {
	mu          sync.Mutex
	gateway     apiclient.GatewayInterface
	tokens      TokenStoreInterface
	store       *SessionStore
	validator   *validation.Validator
	authLogger  AuthLoggerInterface
	metrics     metrics.RecorderInterface
	settleDelay time.Duration
	authTimeout time.Duration
}

// NewSessionService creates a session service publishing to store
func NewSessionService(
	gateway apiclient.GatewayInterface,
	tokens TokenStoreInterface,
	store *SessionStore,
	cfg *config.Config,
	authLogger AuthLoggerInterface,
	recorder metrics.RecorderInterface,
) *SessionService {
	if authLogger == nil {
		authLogger = NewAuthLogger(nil)
	}
	return &SessionService{
		gateway:     gateway,
		tokens:      tokens,
		store:       store,
		validator:   validation.GetValidator(),
		authLogger:  authLogger,
		metrics:     metrics.OrNoop(recorder),
		settleDelay: cfg.Session.LogoutSettleDelay,
		authTimeout: cfg.API.AuthTimeout,
	}
}

func (s *SessionService) State() models.SessionState {
	return s.store.Current()
}

// CheckSession decides the startup state from stored credentials and a ping
func (s *SessionService) CheckSession(ctx context.Context) models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.tokens.Load(ctx)
	if err != nil {
		return s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
	}

	if creds.AccessToken != "" {
		resp, err := s.gateway.Send(ctx, http.MethodGet, pingEndpoint, nil, map[string]string{
			"Authorization": "Bearer " + creds.AccessToken,
		})
		if err != nil {
			return s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
		}
		// The backend answers an invalid access token with an empty body.
		if len(resp.Body) == 0 {
			if err := s.refreshLocked(ctx); err != nil {
				return s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
			}
		}
	}

	if creds.Complete() {
		return s.publish(ctx, models.SessionState{Status: models.SessionAuthenticated, Username: creds.Username})
	}
	return s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
}

// Login exchanges credentials for tokens. Previous credentials are discarded
// before the request is sent.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.authLogger.LogLoginAttempt(ctx, username)

	err := s.login(ctx, username, password)
	if err != nil {
		s.authLogger.LogLoginFailure(ctx, username, err)
		s.countEvent("login_failure")
		return err
	}

	s.authLogger.LogLoginSuccess(ctx, username, time.Since(start))
	s.countEvent("login_success")
	return nil
}

func (s *SessionService) login(ctx context.Context, username, password string) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}
	s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})

	actx, cancel := s.authContext(ctx)
	defer cancel()

	resp, err := s.gateway.Send(actx, http.MethodPost, loginEndpoint, dto.LoginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return err
	}
	if resp.Status == http.StatusUnauthorized {
		return apperrors.New(apperrors.InvalidCredentials)
	}
	if !isSuccess(resp.Status) {
		return apperrors.NewLoginFailed(resp.Status, strings.TrimSpace(resp.Text()))
	}

	tokens, err := decodeTokens(resp)
	if err != nil {
		return err
	}

	if err := s.tokens.SaveCredentials(ctx, models.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.Token,
		Username:     username,
	}); err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}

	s.publish(ctx, models.SessionState{Status: models.SessionAuthenticated, Username: username})
	return nil
}

// Logout always ends Unauthenticated with the credentials cleared, whatever
// the server says.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logoutLocked(ctx)
}

func (s *SessionService) logoutLocked(ctx context.Context) error {
	current := s.store.Current()
	s.publish(ctx, models.SessionState{Status: models.SessionChecking, Username: current.Username})

	refresh, err := s.tokens.RefreshToken(ctx)
	if err != nil || refresh == "" {
		clearErr := s.tokens.Clear(ctx)
		s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
		if err == nil {
			err = clearErr
		}
		if err != nil {
			err = apperrors.Wrap(apperrors.StorageFailure, err)
		} else {
			err = apperrors.New(apperrors.NoActiveSession)
		}
		s.authLogger.LogLogout(ctx, current.Username, err)
		return err
	}

	actx, cancel := s.authContext(ctx)
	resp, reqErr := s.gateway.Send(actx, http.MethodPost, logoutEndpoint, dto.RefreshTokenRequest{Token: refresh}, nil)
	cancel()

	clearErr := s.tokens.Clear(ctx)
	s.settle(ctx)
	s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
	s.countEvent("logout")

	switch {
	case reqErr != nil:
		err = reqErr
	case !isSuccess(resp.Status):
		err = apperrors.NewLogoutFailed(resp.Status)
	case clearErr != nil:
		err = apperrors.Wrap(apperrors.StorageFailure, clearErr)
	}
	s.authLogger.LogLogout(ctx, current.Username, err)
	return err
}

// Register creates an account and signs in with the returned tokens
func (s *SessionService) Register(ctx context.Context, req dto.RegisterRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.register(ctx, req)
	s.authLogger.LogRegistration(ctx, req.Username, err)
	if err == nil {
		s.countEvent("registration")
	}
	return err
}

func (s *SessionService) register(ctx context.Context, req dto.RegisterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	actx, cancel := s.authContext(ctx)
	defer cancel()

	resp, err := s.gateway.Send(actx, http.MethodPost, signupEndpoint, req, nil)
	if err != nil {
		return err
	}
	if !isSuccess(resp.Status) {
		return apperrors.NewRegistrationFailed(resp.Status)
	}

	tokens, err := decodeTokens(resp)
	if err != nil {
		return err
	}

	username := tokens.Username
	if username == "" {
		username = req.Username
	}

	if err := s.tokens.SaveCredentials(ctx, models.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.Token,
		Username:     username,
	}); err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}

	s.publish(ctx, models.SessionState{Status: models.SessionAuthenticated, Username: username})
	return nil
}

// RefreshToken rotates the token pair. A rejected refresh token (401/403)
// or an unexpected failure logs the user out; timeouts and aborts do not.
func (s *SessionService) RefreshToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

func (s *SessionService) refreshLocked(ctx context.Context) (err error) {
	defer func() {
		s.authLogger.LogTokenRefresh(ctx, err)
		result := "success"
		if err != nil {
			result = "failed"
		}
		s.metrics.IncrementCounter(metrics.TokenRefresh, map[string]string{"result": result})
	}()

	refresh, err := s.tokens.RefreshToken(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}
	if refresh == "" {
		s.publish(ctx, models.SessionState{Status: models.SessionUnauthenticated})
		return &apperrors.ClientError{Code: apperrors.NoActiveSession, Message: "No refresh token available"}
	}

	actx, cancel := s.authContext(ctx)
	resp, err := s.gateway.Send(actx, http.MethodPost, refreshEndpoint, dto.RefreshTokenRequest{Token: refresh}, nil)
	cancel()
	if err != nil {
		if !apperrors.IsAbortOrTimeout(err) {
			_ = s.logoutLocked(ctx)
		}
		return err
	}

	if !isSuccess(resp.Status) {
		if resp.Status == http.StatusUnauthorized || resp.Status == http.StatusForbidden {
			_ = s.logoutLocked(ctx)
		}
		return apperrors.NewRefreshFailed(resp.Status)
	}

	tokens, err := decodeTokens(resp)
	if err != nil {
		_ = s.logoutLocked(ctx)
		return err
	}

	if err := s.tokens.SetTokens(ctx, tokens.AccessToken, tokens.Token); err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}

	username, err := s.tokens.Username(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}
	if username != "" {
		s.publish(ctx, models.SessionState{Status: models.SessionAuthenticated, Username: username})
	}
	return nil
}

// Result adapters for presentation code

func (s *SessionService) LoginResult(ctx context.Context, username, password string) apperrors.Result {
	return apperrors.ToResult(s.Login(ctx, username, password))
}

func (s *SessionService) LogoutResult(ctx context.Context) apperrors.Result {
	return apperrors.ToResult(s.Logout(ctx))
}

func (s *SessionService) RegisterResult(ctx context.Context, req dto.RegisterRequest) apperrors.Result {
	return apperrors.ToResult(s.Register(ctx, req))
}

func (s *SessionService) RefreshTokenResult(ctx context.Context) apperrors.Result {
	return apperrors.ToResult(s.RefreshToken(ctx))
}

func (s *SessionService) publish(ctx context.Context, state models.SessionState) models.SessionState {
	from := s.store.Current().Status
	s.store.set(state)
	if from != state.Status {
		s.authLogger.LogStateChange(ctx, from, state.Status)
		s.metrics.IncrementCounter(metrics.SessionTransition, map[string]string{"status": string(state.Status)})
	}
	return state
}

func (s *SessionService) authContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.authTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.authTimeout)
}

func (s *SessionService) settle(ctx context.Context) {
	if s.settleDelay <= 0 {
		return
	}
	t := time.NewTimer(s.settleDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (s *SessionService) countEvent(eventType string) {
	s.metrics.IncrementCounter(metrics.AuthenticationEvent, map[string]string{"event_type": eventType})
}

func decodeTokens(resp *apiclient.Response) (dto.TokenResponse, error) {
	var tokens dto.TokenResponse
	if err := resp.Decode(&tokens); err != nil {
		return tokens, err
	}
	if !tokens.HasTokens() {
		return tokens, apperrors.NewMalformedResponse("missing tokens")
	}
	return tokens, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// IsSessionExpired reports whether err means the user must sign in again
func IsSessionExpired(err error) bool {
	return errors.Is(err, apperrors.ErrSessionExpired) || errors.Is(err, apperrors.ErrAuthenticationRequired)
}
