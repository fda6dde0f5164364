package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"expense-client/internal/backend"
	"expense-client/internal/config"
	"expense-client/internal/database"
	"expense-client/internal/handlers"
	"expense-client/internal/metrics"
	"expense-client/internal/middleware"
	"expense-client/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout      = 10 * time.Second
	visitorSweepInterval = time.Minute
	demoExpenseCount     = 40
)

// Server is the development backend: every auth, user, expense and ds
// endpoint the client calls, over a local SQLite database
type Server struct {
	cfg         config.DevServerConfig
	echo        *echo.Echo
	db          *database.DB
	registry    *prometheus.Registry
	rateLimiter *middleware.RateLimiter
	authService backend.AuthServiceInterface
	expenses    backend.ExpenseServiceInterface
	logger      *slog.Logger
}

// New opens the database at cfg.DBPath, creates the backend tables and wires
// the routes. Missing JWT keys are resolved through cfg.LoadJWTKeys.
func New(cfg config.DevServerConfig, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.JWT.PrivateKey == nil || cfg.JWT.PublicKey == nil {
		if err := cfg.LoadJWTKeys(); err != nil {
			return nil, fmt.Errorf("failed to load JWT keys: %w", err)
		}
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = ":memory:"
	}
	db, err := database.New(&config.StorageConfig{Path: dbPath})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrateBackend(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate backend tables: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheusMetrics(registry)

	userRepo := repositories.NewUserAccountRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	expenseRepo := repositories.NewExpenseRecordRepository(db.DB)

	tokenService := backend.NewTokenService(&cfg.JWT)
	authService := backend.NewAuthService(
		userRepo,
		refreshTokenRepo,
		backend.NewPasswordService(cfg.BCryptCost),
		tokenService,
		logger,
	)
	expenseService := backend.NewExpenseService(
		expenseRepo,
		backend.NewMessageParser(backend.NewCategorizer()),
		recorder,
		logger,
	)

	s := &Server{
		cfg:         cfg,
		echo:        echo.New(),
		db:          db,
		registry:    registry,
		rateLimiter: middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		authService: authService,
		expenses:    expenseService,
		logger:      logger,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Validator = handlers.NewValidator()
	s.echo.HTTPErrorHandler = middleware.NewHTTPErrorHandler(recorder, logger)

	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.PanicRecovery(logger))
	s.echo.Use(middleware.SecurityHeaders())
	s.echo.Use(s.rateLimiter.Middleware())

	s.registerRoutes(tokenService)
	return s, nil
}

func (s *Server) registerRoutes(tokenService backend.TokenServiceInterface) {
	authHandler := handlers.NewAuthHandler(s.authService)
	userHandler := handlers.NewUserHandler(s.authService)
	expenseHandler := handlers.NewExpenseHandler(s.expenses)
	messageHandler := handlers.NewMessageHandler(s.expenses)
	healthHandler := handlers.NewHealthCheckHandler(s.db.DB)

	s.echo.GET("/health", healthHandler.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	auth := s.echo.Group("/auth/v1")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/refreshToken", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)
	// ping validates the token itself so it can answer with an empty body
	auth.GET("/ping", authHandler.Ping)

	requireAuth := middleware.RequireAuth(tokenService)

	user := s.echo.Group("/user/v1", requireAuth)
	user.GET("/getUser", userHandler.GetUser)

	expense := s.echo.Group("/expense/v1", requireAuth)
	expense.GET("/getExpense", expenseHandler.GetExpenses)
	expense.GET("/getExpense/by-type", expenseHandler.GetExpensesByType)
	expense.GET("/getExpense/by-merchant", expenseHandler.GetExpensesByMerchant)
	expense.GET("/getExpense/by-merchant-date", expenseHandler.GetExpensesByMerchantDate)
	expense.POST("/addExpense", expenseHandler.AddExpense)
	expense.PATCH("/updateExpense", expenseHandler.UpdateExpense)

	ds := s.echo.Group("/v1/ds", requireAuth)
	ds.POST("/message", messageHandler.ParseMessage)
}

// Handler exposes the routed echo instance, mainly for httptest servers
func (s *Server) Handler() http.Handler {
	return s.echo
}

// SeedDemoData creates the demo account with a few months of expenses
func (s *Server) SeedDemoData(ctx context.Context, seed uint64) error {
	return backend.NewSeeder(s.authService, s.expenses, seed, s.logger).Seed(ctx, demoExpenseCount)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully and closes the database
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.rateLimiter.Run(ctx, visitorSweepInterval)

	srv := &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("development backend listening",
			"address", l.Addr().String(),
			"environment", s.cfg.Environment,
		)
		errCh <- srv.Serve(l)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}
	if errors.Is(serveErr, http.ErrServerClosed) {
		serveErr = nil
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("development backend shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serveErr = errors.Join(serveErr, fmt.Errorf("failed to shut down: %w", err))
	}
	if err := s.db.Close(); err != nil {
		serveErr = errors.Join(serveErr, fmt.Errorf("failed to close database: %w", err))
	}
	return serveErr
}

// ListenAndServe listens on cfg.Address() and calls Serve
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		_ = s.db.Close()
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address(), err)
	}
	return s.Serve(ctx, l)
}

// Close releases the database without serving
func (s *Server) Close() error {
	return s.db.Close()
}
