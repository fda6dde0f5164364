package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"expense-client/internal/config"
	apperrors "expense-client/internal/errors"

	"github.com/stretchr/testify/suite"
)

type memTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
	setErr  error
}

func (m *memTokens) AccessToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, nil
}

func (m *memTokens) RefreshToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memTokens) SetTokens(_ context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.access, m.refresh = access, refresh
	return nil
}

func TestGateway(t *testing.T) {
	suite.Run(t, new(GatewaySuite))
}

type GatewaySuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	tokens  *memTokens
	gateway *Gateway
	calls   map[string]*int32
}

func (s *GatewaySuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.tokens = &memTokens{access: "A1", refresh: "R1"}
	s.calls = map[string]*int32{}
	s.gateway = NewGateway(config.APIConfig{BaseURL: s.server.URL + "/", RequestTimeout: time.Second}, s.tokens)
}

func (s *GatewaySuite) TearDownTest() {
	s.server.Close()
}

func (s *GatewaySuite) handle(pattern string, h http.HandlerFunc) {
	counter := new(int32)
	s.calls[pattern] = counter
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(counter, 1)
		h(w, r)
	})
}

func (s *GatewaySuite) count(pattern string) int32 {
	if c, ok := s.calls[pattern]; ok {
		return atomic.LoadInt32(c)
	}
	return 0
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *GatewaySuite) TestRequiresAuth_MissingTokenMakesNoRequest() {
	s.tokens.access = ""
	s.handle("/user/v1/getUser", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	_, err := s.gateway.Request(context.Background(), http.MethodGet, "user/v1/getUser", nil, RequestOptions{RequiresAuth: true})

	s.ErrorIs(err, apperrors.ErrAuthenticationRequired)
	s.Equal(int32(0), s.count("/user/v1/getUser"))
}

func (s *GatewaySuite) TestRequest_AttachesHeaders() {
	var got http.Header
	s.handle("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, []any{})
	})

	resp, err := s.gateway.Request(context.Background(), http.MethodGet, "/expense/v1/getExpense", nil,
		RequestOptions{RequiresAuth: true, Headers: map[string]string{"X-Client": "cli"}})

	s.Require().NoError(err)
	s.True(resp.IsJSON())
	s.Equal("Bearer A1", got.Get("Authorization"))
	s.Equal("application/json", got.Get("Content-Type"))
	s.Equal("cli", got.Get("X-Client"))
	s.NotEmpty(got.Get(HeaderTraceID))
}

func (s *GatewaySuite) TestRequest_UseRefreshTokenSendsRefreshBearer() {
	var auth string
	s.handle("/auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := s.gateway.Request(context.Background(), http.MethodPost, "auth/v1/logout", nil,
		RequestOptions{RequiresAuth: true, UseRefreshToken: true})

	s.Require().NoError(err)
	s.Empty(resp.Body)
	s.Equal("Bearer R1", auth)
}

func (s *GatewaySuite) TestRequest_GetSendsNoBody() {
	var body []byte
	s.handle("/auth/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	})

	resp, err := s.gateway.Request(context.Background(), http.MethodGet, "auth/v1/ping", map[string]string{"x": "y"}, RequestOptions{})

	s.Require().NoError(err)
	s.Empty(body)
	s.False(resp.IsJSON())
	s.Equal("pong", resp.Text())
}

func (s *GatewaySuite) TestRequest_401RefreshesOnceAndRetries() {
	var retriedWith string
	s.handle("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer A1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		retriedWith = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []map[string]any{{"amount": 10}})
	})
	s.handle("/auth/v1/refreshToken", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.Equal("R1", req["token"])
		s.Empty(r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2", "token": "R2"})
	})

	var out []map[string]any
	err := s.gateway.RequestJSON(context.Background(), http.MethodGet, "expense/v1/getExpense", nil, RequestOptions{RequiresAuth: true}, &out)

	s.Require().NoError(err)
	s.Len(out, 1)
	s.Equal(int32(2), s.count("/expense/v1/getExpense"))
	s.Equal(int32(1), s.count("/auth/v1/refreshToken"))
	s.Equal("Bearer A2", retriedWith)
	s.Equal("A2", s.tokens.access)
	s.Equal("R2", s.tokens.refresh)
}

func (s *GatewaySuite) TestRequest_RefreshFailureIsSessionExpired() {
	s.handle("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	s.handle("/auth/v1/refreshToken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
	})

	_, err := s.gateway.Request(context.Background(), http.MethodGet, "expense/v1/getExpense", nil, RequestOptions{RequiresAuth: true})

	s.ErrorIs(err, apperrors.ErrSessionExpired)
	s.Equal(int32(1), s.count("/expense/v1/getExpense"))
	s.Equal(int32(1), s.count("/auth/v1/refreshToken"))
	s.Equal("A1", s.tokens.access)
}

func (s *GatewaySuite) TestRequest_SecondUnauthorizedIsSessionExpired() {
	s.handle("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	s.handle("/auth/v1/refreshToken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2", "token": "R2"})
	})

	_, err := s.gateway.Request(context.Background(), http.MethodGet, "expense/v1/getExpense", nil, RequestOptions{RequiresAuth: true})

	s.ErrorIs(err, apperrors.ErrSessionExpired)
	s.Equal(int32(2), s.count("/expense/v1/getExpense"))
	s.Equal(int32(1), s.count("/auth/v1/refreshToken"))
}

func (s *GatewaySuite) TestRequest_RefreshMissingTokensIsSessionExpired() {
	s.handle("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	s.handle("/auth/v1/refreshToken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2"})
	})

	_, err := s.gateway.Request(context.Background(), http.MethodGet, "expense/v1/getExpense", nil, RequestOptions{RequiresAuth: true})

	s.ErrorIs(err, apperrors.ErrSessionExpired)
	s.ErrorIs(err, apperrors.ErrMalformedServerResponse)
	s.Equal("A1", s.tokens.access)
}

func (s *GatewaySuite) TestRequest_UnauthorizedWithRefreshTokenIsNotRetried() {
	s.handle("/auth/v1/refreshToken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := s.gateway.Request(context.Background(), http.MethodPost, "auth/v1/refreshToken", map[string]string{"token": "R1"},
		RequestOptions{UseRefreshToken: true})

	s.ErrorIs(err, apperrors.ErrRequestFailed)
	s.Equal(http.StatusUnauthorized, apperrors.StatusOf(err))
	s.Equal(int32(1), s.count("/auth/v1/refreshToken"))
}

func (s *GatewaySuite) TestRequest_ErrorMessages() {
	s.handle("/json-message", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad amount"})
	})
	s.handle("/json-error", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "duplicate"})
	})
	s.handle("/json-empty", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]int{"code": 1})
	})
	s.handle("/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(" down for maintenance \n"))
	})

	cases := map[string]struct {
		status  int
		message string
	}{
		"json-message": {http.StatusBadRequest, "bad amount"},
		"json-error":   {http.StatusConflict, "duplicate"},
		"json-empty":   {http.StatusBadGateway, "Request failed with status 502"},
		"text":         {http.StatusServiceUnavailable, "down for maintenance"},
	}

	for endpoint, want := range cases {
		_, err := s.gateway.Request(context.Background(), http.MethodGet, endpoint, nil, RequestOptions{})
		s.ErrorIs(err, apperrors.ErrRequestFailed, endpoint)
		s.Equal(want.status, apperrors.StatusOf(err), endpoint)
		s.Equal(want.message, apperrors.ToResult(err).Msg, endpoint)
	}
}

func (s *GatewaySuite) TestRequest_Timeout() {
	gateway := NewGateway(config.APIConfig{BaseURL: s.server.URL, RequestTimeout: 50 * time.Millisecond}, s.tokens)
	s.handle("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := gateway.Request(context.Background(), http.MethodGet, "slow", nil, RequestOptions{})

	s.ErrorIs(err, apperrors.ErrRequestTimeout)
	s.Equal("Request timed out. Server might be unreachable.", apperrors.ToResult(err).Msg)
}

func (s *GatewaySuite) TestRequest_CallerCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	s.handle("/slow", func(w http.ResponseWriter, r *http.Request) {
		cancel()
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := s.gateway.Request(ctx, http.MethodGet, "slow", nil, RequestOptions{})

	s.ErrorIs(err, apperrors.ErrRequestAborted)
	s.True(apperrors.IsAbortOrTimeout(err))
}

func (s *GatewaySuite) TestRequest_NetworkError() {
	s.server.Close()

	_, err := s.gateway.Request(context.Background(), http.MethodGet, "anything", nil, RequestOptions{})

	s.ErrorIs(err, apperrors.ErrNetwork)
	s.False(apperrors.IsAbortOrTimeout(err))
}

func (s *GatewaySuite) TestRequest_CircuitBreakerOpensOnServerErrors() {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1})
	gateway := NewGateway(config.APIConfig{BaseURL: s.server.URL}, s.tokens, WithCircuitBreaker(cb))
	s.handle("/flaky", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 2; i++ {
		_, err := gateway.Request(context.Background(), http.MethodGet, "flaky", nil, RequestOptions{})
		s.ErrorIs(err, apperrors.ErrRequestFailed)
	}

	_, err := gateway.Request(context.Background(), http.MethodGet, "flaky", nil, RequestOptions{})
	s.ErrorIs(err, apperrors.ErrCircuitOpen)
	s.Equal(int32(2), s.count("/flaky"))
}

func (s *GatewaySuite) TestRequest_ClientErrorsDoNotTripBreaker() {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Minute})
	gateway := NewGateway(config.APIConfig{BaseURL: s.server.URL}, s.tokens, WithCircuitBreaker(cb))
	s.handle("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 3; i++ {
		_, err := gateway.Request(context.Background(), http.MethodGet, "missing", nil, RequestOptions{})
		s.ErrorIs(err, apperrors.ErrRequestFailed)
	}
	s.Equal(StateClosed, cb.GetState())
}

func (s *GatewaySuite) TestSend_ReturnsAnyStatus() {
	s.handle("/auth/v1/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("nope"))
	})

	resp, err := s.gateway.Send(context.Background(), http.MethodPost, "auth/v1/login", map[string]string{"username": "u"}, nil)

	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, resp.Status)
	s.Equal("nope", resp.Text())
	s.Equal(int32(0), s.count("/auth/v1/refreshToken"))
}

func (s *GatewaySuite) TestTraceIDIsPropagated() {
	var seen []string
	var mu sync.Mutex
	s.handle("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get(HeaderTraceID))
		mu.Unlock()
		if len(seen) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	})
	s.handle("/auth/v1/refreshToken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": "A2", "token": "R2"})
	})

	ctx := ContextWithTraceID(context.Background(), "trace-123")
	_, err := s.gateway.Request(ctx, http.MethodGet, "expense/v1/getExpense", nil, RequestOptions{RequiresAuth: true})

	s.Require().NoError(err)
	s.Equal([]string{"trace-123", "trace-123"}, seen)
}

func (s *GatewaySuite) TestDecode_Malformed() {
	resp := &Response{Status: 200, ContentType: "application/json", Body: []byte("{not json")}
	var out map[string]any

	err := resp.Decode(&out)

	s.ErrorIs(err, apperrors.ErrMalformedServerResponse)
	s.NoError((&Response{}).Decode(&out))
}

func (s *GatewaySuite) TestIsJSON() {
	s.True((&Response{ContentType: "application/json; charset=utf-8"}).IsJSON())
	s.True((&Response{ContentType: "application/problem+json"}).IsJSON())
	s.False((&Response{ContentType: "text/html"}).IsJSON())
	s.False((&Response{}).IsJSON())
}

func (s *GatewaySuite) TestClassifyTransportError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(classifyTransportError(ctx, errors.New("boom")), apperrors.ErrRequestAborted)
	s.ErrorIs(classifyTransportError(context.Background(), context.DeadlineExceeded), apperrors.ErrRequestTimeout)
	s.ErrorIs(classifyTransportError(context.Background(), errors.New("connection refused")), apperrors.ErrNetwork)
}
