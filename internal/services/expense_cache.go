package services

import (
	"context"
	"log/slog"
	"sync"

	apperrors "expense-client/internal/errors"
	"expense-client/internal/metrics"
	"expense-client/internal/models"
)

var _ ExpenseCacheInterface = (*ExpenseCache)(nil)

// ExpenseCache holds the authenticated user's expenses in memory. It has no
// persistence and no delete path.
type ExpenseCache struct {
	mu       sync.RWMutex
	expenses []models.Expense
	loading  bool
	lastErr  error
	// gen counts resets; results of calls begun before a reset are dropped
	gen uint64

	service ExpenseServiceInterface
	session SessionStoreInterface
	metrics metrics.RecorderInterface
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func NewExpenseCache(service ExpenseServiceInterface, session SessionStoreInterface, logger *slog.Logger, recorder metrics.RecorderInterface) *ExpenseCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseCache{
		service: service,
		session: session,
		metrics: metrics.OrNoop(recorder),
		logger:  logger,
	}
}

// Watch follows the session: entering Authenticated starts a background
// refresh and Unauthenticated empties the cache. The returned func stops
// watching.
func (c *ExpenseCache) Watch(ctx context.Context) func() {
	var mu sync.Mutex
	prev := c.session.Current().Status

	return c.session.Subscribe(func(state models.SessionState) {
		mu.Lock()
		changed := state.Status != prev
		prev = state.Status
		mu.Unlock()

		if !changed {
			return
		}

		switch state.Status {
		case models.SessionAuthenticated:
			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				if err := c.Refresh(ctx); err != nil {
					c.logger.WarnContext(ctx, "failed to fetch expenses", "error", err)
				}
			}()
		case models.SessionUnauthenticated:
			c.reset()
		}
	})
}

// Wait blocks until background refreshes started by Watch have finished
func (c *ExpenseCache) Wait() {
	c.wg.Wait()
}

// Refresh replaces the cached list with the server's. It does nothing unless
// the session is authenticated, and a result that arrives after the session
// ended is discarded.
func (c *ExpenseCache) Refresh(ctx context.Context) error {
	if !c.session.Current().IsAuthenticated() {
		return nil
	}

	gen := c.begin()
	expenses, err := c.service.GetAllExpenses(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen || !c.session.Current().IsAuthenticated() {
		c.loading = false
		return nil
	}
	c.loading = false
	if err != nil {
		c.lastErr = err
		c.metrics.IncrementCounter(metrics.ExpenseCacheRefresh, map[string]string{"status": "failed"})
		return err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	c.expenses = expenses
	c.metrics.IncrementCounter(metrics.ExpenseCacheRefresh, map[string]string{"status": "success"})
	c.metrics.RecordGauge(metrics.ExpenseCacheSize, float64(len(c.expenses)), nil)
	return nil
}

// Add creates the expense on the server and prepends the stored record
func (c *ExpenseCache) Add(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	gen := c.begin()
	created, err := c.service.AddExpense(ctx, expense)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.lastErr = err
		return nil, err
	}
	if c.gen != gen {
		return created, nil
	}
	c.expenses = append([]models.Expense{*created}, c.expenses...)
	c.metrics.RecordGauge(metrics.ExpenseCacheSize, float64(len(c.expenses)), nil)
	return created, nil
}

// Update saves the expense and replaces the cached entry with the same
// external_id
func (c *ExpenseCache) Update(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	if expense.ExternalID == "" {
		err := apperrors.New(apperrors.ExpenseIDRequired)
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return nil, err
	}

	gen := c.begin()
	updated, err := c.service.UpdateExpense(ctx, expense)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.lastErr = err
		return nil, err
	}
	if c.gen != gen {
		return updated, nil
	}
	for i := range c.expenses {
		if c.expenses[i].ExternalID == expense.ExternalID {
			c.expenses[i] = *updated
		}
	}
	return updated, nil
}

// List returns a copy of the cached expenses
func (c *ExpenseCache) List() []models.Expense {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Expense, len(c.expenses))
	copy(out, c.expenses)
	return out
}

func (c *ExpenseCache) Analytics(window models.DateWindow) models.AnalyticsSummary {
	return Aggregate(c.List(), window)
}

func (c *ExpenseCache) Snapshot() models.CacheSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := models.CacheSnapshot{
		Expenses:  make([]models.Expense, len(c.expenses)),
		IsLoading: c.loading,
	}
	copy(snap.Expenses, c.expenses)
	if c.lastErr != nil {
		snap.LastError = apperrors.ToResult(c.lastErr).Msg
	}
	return snap
}

// begin marks a call in flight and returns the current generation
func (c *ExpenseCache) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.lastErr = nil
	return c.gen
}

func (c *ExpenseCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.expenses = nil
	c.lastErr = nil
	c.loading = false
	c.metrics.RecordGauge(metrics.ExpenseCacheSize, 0, nil)
}
