package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"expense-client/internal/apiclient"
	"expense-client/internal/config"
	"expense-client/internal/database"
	"expense-client/internal/metrics"
	"expense-client/internal/repositories"
	"expense-client/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

var errNotLoggedIn = errors.New("not logged in, run expensectl login first")

// app holds the client stack for one invocation
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *database.DB

	registry *prometheus.Registry
	recorder metrics.RecorderInterface

	tokens  *services.TokenStore
	store   *services.SessionStore
	session *services.SessionService

	expenses services.ExpenseServiceInterface
	users    services.UserServiceInterface
	parser   services.DataScienceServiceInterface
	cache    *services.ExpenseCache

	stdin  io.Reader
	stderr io.Writer
	out    *output
}

func newApp(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, jsonOut bool) (*app, error) {
	logger := cfg.Logging.NewLogger(stderr)

	db, err := database.Initialize(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewPrometheusMetrics(registry)

	tokens := services.NewTokenStore(repositories.NewCredentialRepository(db.DB))
	gateway := apiclient.NewGateway(cfg.API, tokens,
		apiclient.WithCircuitBreaker(apiclient.NewBreakerFromConfig(cfg.Resilience)),
		apiclient.WithLogger(logger),
		apiclient.WithMetrics(recorder),
	)

	store := services.NewSessionStore()
	expenses := services.NewExpenseService(gateway, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		registry: registry,
		recorder: recorder,
		tokens:   tokens,
		store:    store,
		session:  services.NewSessionService(gateway, tokens, store, cfg, services.NewAuthLogger(logger), recorder),
		expenses: expenses,
		users:    services.NewUserService(gateway),
		parser:   services.NewDataScienceService(gateway, logger),
		cache:    services.NewExpenseCache(expenses, store, logger, recorder),
		stdin:    stdin,
		stderr:   stderr,
		out:      &output{w: stdout, json: jsonOut},
	}, nil
}

// Close logs the invocation's metrics at debug level and closes the store
func (a *app) Close() error {
	a.logMetrics(context.Background())
	return a.db.Close()
}

func (a *app) logMetrics(ctx context.Context) {
	if !a.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.WarnContext(ctx, "failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			a.logger.DebugContext(ctx, "metric", attrs...)
		}
	}
}

// requireSession restores the stored session, refreshing the access token
// when the backend rejects it
func (a *app) requireSession(ctx context.Context) error {
	if !a.session.CheckSession(ctx).IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

// loadExpenses fills the cache from the backend
func (a *app) loadExpenses(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	return a.cache.Refresh(ctx)
}
