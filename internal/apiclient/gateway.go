package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"expense-client/internal/config"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/metrics"

	"github.com/google/uuid"
)

const (
	HeaderTraceID = "X-Trace-ID"

	refreshEndpoint = "auth/v1/refreshToken"
	defaultTimeout  = 15 * time.Second
)

// TokenAccessor is the slice of the token store the gateway needs. Absent
// tokens are returned as "" with a nil error.
type TokenAccessor interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
}

// RequestOptions control authentication for a single gateway call
type RequestOptions struct {
	// RequiresAuth attaches a bearer token; the call fails before any network
	// activity when the token is absent.
	RequiresAuth bool
	// UseRefreshToken selects the refresh token instead of the access token
	// and disables the 401 refresh-and-retry.
	UseRefreshToken bool
	Headers         map[string]string
}

// Response is a completed HTTP exchange
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the server declared a JSON body
func (r *Response) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return strings.Contains(r.ContentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Text returns the body as a string
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals a JSON body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if out == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return apperrors.NewMalformedResponse(err.Error())
	}
	return nil
}

// GatewayInterface is the HTTP surface consumed by the services
type GatewayInterface interface {
	// Send performs one attempt and returns the response whatever its status.
	Send(ctx context.Context, method, endpoint string, body any, headers map[string]string) (*Response, error)
	// Request applies auth, the 401 refresh-and-retry and status mapping.
	Request(ctx context.Context, method, endpoint string, body any, opts RequestOptions) (*Response, error)
	// RequestJSON is Request followed by decoding into out.
	RequestJSON(ctx context.Context, method, endpoint string, body any, opts RequestOptions, out any) error
}

var _ GatewayInterface = (*Gateway)(nil)

type Gateway struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	tokens     TokenAccessor
	breaker    CircuitBreakerInterface
	metrics    metrics.RecorderInterface
	logger     *slog.Logger
}

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

func WithCircuitBreaker(cb CircuitBreakerInterface) Option {
	return func(g *Gateway) { g.breaker = cb }
}

func WithMetrics(m metrics.RecorderInterface) Option {
	return func(g *Gateway) { g.metrics = metrics.OrNoop(m) }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGateway creates a gateway for cfg.BaseURL. The per-attempt deadline is
// cfg.RequestTimeout (15s when unset).
func NewGateway(cfg config.APIConfig, tokens TokenAccessor, opts ...Option) *Gateway {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	g := &Gateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		tokens:     tokens,
		metrics:    metrics.Noop{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewBreakerFromConfig builds the breaker described by cfg, or nil when disabled
func NewBreakerFromConfig(cfg config.ResilienceConfig) CircuitBreakerInterface {
	if !cfg.CircuitBreakerEnabled {
		return nil
	}
	return NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     cfg.CircuitBreakerMaxFailures,
		ResetTimeout:    cfg.CircuitBreakerReset,
		HalfOpenMaxSucc: cfg.CircuitBreakerHalfOpenMax,
	})
}

func (g *Gateway) Request(ctx context.Context, method, endpoint string, body any, opts RequestOptions) (*Response, error) {
	ctx = withTraceID(ctx)

	resp, err := g.authorizedAttempt(ctx, method, endpoint, body, opts)
	if err != nil {
		return nil, err
	}

	if resp.Status == http.StatusUnauthorized && !opts.UseRefreshToken {
		if err := g.refreshTokens(ctx); err != nil {
			g.logger.WarnContext(ctx, "token refresh after 401 failed",
				"trace_id", TraceIDFromContext(ctx),
				"endpoint", endpoint,
				"error", err,
			)
			g.metrics.IncrementCounter(metrics.TokenRefresh, map[string]string{"result": "failed"})
			return nil, apperrors.Wrap(apperrors.SessionExpired, err)
		}
		g.metrics.IncrementCounter(metrics.TokenRefresh, map[string]string{"result": "success"})

		resp, err = g.authorizedAttempt(ctx, method, endpoint, body, opts)
		if err != nil {
			return nil, err
		}
		if resp.Status == http.StatusUnauthorized {
			return nil, apperrors.New(apperrors.SessionExpired)
		}
	}

	return interpret(resp)
}

func (g *Gateway) RequestJSON(ctx context.Context, method, endpoint string, body any, opts RequestOptions, out any) error {
	resp, err := g.Request(ctx, method, endpoint, body, opts)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (g *Gateway) Send(ctx context.Context, method, endpoint string, body any, headers map[string]string) (*Response, error) {
	return g.attempt(withTraceID(ctx), method, endpoint, body, headers)
}

func (g *Gateway) authorizedAttempt(ctx context.Context, method, endpoint string, body any, opts RequestOptions) (*Response, error) {
	headers := make(map[string]string, len(opts.Headers)+1)

	if opts.RequiresAuth {
		token, err := g.bearerToken(ctx, opts.UseRefreshToken)
		if err != nil {
			return nil, err
		}
		headers["Authorization"] = "Bearer " + token
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return g.attempt(ctx, method, endpoint, body, headers)
}

func (g *Gateway) bearerToken(ctx context.Context, useRefresh bool) (string, error) {
	var (
		token string
		err   error
	)
	if useRefresh {
		token, err = g.tokens.RefreshToken(ctx)
	} else {
		token, err = g.tokens.AccessToken(ctx)
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.StorageFailure, err)
	}
	if token == "" {
		return "", apperrors.New(apperrors.AuthenticationRequired)
	}
	return token, nil
}

// attempt issues exactly one HTTP request bounded by the gateway timeout
func (g *Gateway) attempt(ctx context.Context, method, endpoint string, body any, headers map[string]string) (*Response, error) {
	if g.breaker != nil && g.breaker.IsOpen() {
		return nil, apperrors.New(apperrors.CircuitOpen)
	}

	var reader io.Reader
	if body != nil && method != http.MethodGet {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, method, g.url(endpoint), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderTraceID, TraceIDFromContext(ctx))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	httpResp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, g.transportFailure(ctx, method, endpoint, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, g.transportFailure(ctx, method, endpoint, err)
	}

	g.metrics.IncrementCounter(metrics.APIRequest, map[string]string{
		"method": method,
		"status": strconv.Itoa(httpResp.StatusCode),
	})
	g.metrics.RecordProcessingTime(metrics.APIRequestDuration, time.Since(start))
	g.logger.DebugContext(ctx, "api request completed",
		"trace_id", TraceIDFromContext(ctx),
		"method", method,
		"endpoint", endpoint,
		"status", httpResp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if httpResp.StatusCode >= http.StatusInternalServerError {
		g.recordBreaker(false)
	} else {
		g.recordBreaker(true)
	}

	return &Response{
		Status:      httpResp.StatusCode,
		ContentType: httpResp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

func (g *Gateway) transportFailure(ctx context.Context, method, endpoint string, err error) error {
	mapped := classifyTransportError(ctx, err)
	if !errors.Is(mapped, apperrors.ErrRequestAborted) {
		g.recordBreaker(false)
	}
	g.metrics.IncrementCounter(metrics.APIRequest, map[string]string{"method": method, "status": "error"})
	g.logger.WarnContext(ctx, "api request failed",
		"trace_id", TraceIDFromContext(ctx),
		"method", method,
		"endpoint", endpoint,
		"error", err,
	)
	return mapped
}

func (g *Gateway) recordBreaker(success bool) {
	if g.breaker == nil {
		return
	}
	if success {
		g.breaker.RecordSuccess()
	} else {
		g.breaker.RecordFailure()
	}
	g.metrics.RecordGauge(metrics.CircuitBreakerState, float64(g.breaker.GetState()), map[string]string{"service": "api"})
}

// refreshTokens exchanges the stored refresh token for a new pair
func (g *Gateway) refreshTokens(ctx context.Context) error {
	refresh, err := g.tokens.RefreshToken(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}
	if refresh == "" {
		return apperrors.New(apperrors.NoActiveSession)
	}

	var tokens dto.TokenResponse
	err = g.RequestJSON(ctx, http.MethodPost, refreshEndpoint,
		dto.RefreshTokenRequest{Token: refresh},
		RequestOptions{UseRefreshToken: true},
		&tokens,
	)
	if err != nil {
		return err
	}
	if !tokens.HasTokens() {
		return apperrors.NewMalformedResponse("refresh response missing tokens")
	}

	if err := g.tokens.SetTokens(ctx, tokens.AccessToken, tokens.Token); err != nil {
		return apperrors.Wrap(apperrors.StorageFailure, err)
	}
	return nil
}

func (g *Gateway) url(endpoint string) string {
	return g.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// interpret maps a completed response onto the success/failure contract
func interpret(resp *Response) (*Response, error) {
	if resp.Status < 200 || resp.Status > 299 {
		return nil, apperrors.NewRequestFailed(resp.Status, apperrors.ExtractMessage(resp.Body))
	}
	if resp.Status == http.StatusNoContent {
		resp.Body = nil
	}
	return resp, nil
}

// classifyTransportError maps a failed round trip. Caller cancellation is an
// abort; any deadline is a timeout.
func classifyTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrap(apperrors.RequestAborted, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.Wrap(apperrors.RequestTimeout, err)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(apperrors.RequestAborted, err)
	default:
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return apperrors.Wrap(apperrors.RequestTimeout, err)
		}
		return apperrors.Wrap(apperrors.NetworkError, err)
	}
}

type traceIDKey struct{}

// withTraceID attaches a trace id unless ctx already carries one
func withTraceID(ctx context.Context) context.Context {
	if TraceIDFromContext(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey{}, uuid.NewString())
}

// ContextWithTraceID pins the trace id sent with every request made under ctx
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}
