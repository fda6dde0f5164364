package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"expense-client/internal/dto"
	"expense-client/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Demo account created by SeedDemoData
const (
	DemoUsername = "demo"
	DemoPassword = "demo-password"
)

var demoMerchants = map[string]string{
	"Swiggy":     models.CategoryFood,
	"Zomato":     models.CategoryFood,
	"BigBasket":  models.CategoryGroceries,
	"Uber":       models.CategoryTransport,
	"Flipkart":   models.CategoryShopping,
	"Netflix":    models.CategoryEntertainment,
	"Airtel":     models.CategoryBills,
	"Apollo":     models.CategoryHealth,
	"IRCTC":      models.CategoryTravel,
	"Local Shop": "",
}

// Seeder fills the development backend with a demo user and a few months
// of random transactions
type Seeder struct {
	auth     AuthServiceInterface
	expenses ExpenseServiceInterface
	faker    *gofakeit.Faker
	logger   *slog.Logger
	now      func() time.Time
}

// NewSeeder creates a seeder. A zero seed draws a random one.
func NewSeeder(auth AuthServiceInterface, expenses ExpenseServiceInterface, seed uint64, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		auth:     auth,
		expenses: expenses,
		faker:    gofakeit.New(seed),
		logger:   logger,
		now:      time.Now,
	}
}

// Seed creates the demo account with count expenses. An existing demo
// account is left untouched.
func (s *Seeder) Seed(ctx context.Context, count int) error {
	tokens, err := s.auth.Signup(ctx, &dto.RegisterRequest{
		FirstName:   s.faker.FirstName(),
		LastName:    s.faker.LastName(),
		Username:    DemoUsername,
		Email:       DemoUsername + "@example.com",
		Password:    DemoPassword,
		PhoneNumber: "+91" + s.faker.Numerify("9#########"),
	})
	if errors.Is(err, ErrUserAlreadyExists) {
		s.logger.InfoContext(ctx, "demo user already present, skipping seed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	claims, err := s.auth.Authenticate(ctx, tokens.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to read demo user: %w", err)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("failed to read demo user: %w", err)
	}

	for i := 0; i < count; i++ {
		if _, err := s.expenses.Add(ctx, userID, s.randomExpense()); err != nil {
			return fmt.Errorf("failed to seed expense: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "seeded demo data", "username", DemoUsername, "expenses", count)
	return nil
}

func (s *Seeder) randomExpense() models.Expense {
	end := s.now().UTC()
	createdAt := s.faker.DateRange(end.AddDate(0, -3, 0), end)

	// Roughly one in ten transactions is income.
	if s.faker.IntRange(1, 10) == 1 {
		return models.Expense{
			Amount:          s.faker.Price(5000, 80000),
			Currency:        models.DefaultCurrency,
			Merchant:        s.faker.Company(),
			TransactionType: models.TransactionCredited,
			CreatedAt:       createdAt.Format(time.RFC3339),
		}
	}

	merchant := s.faker.RandomString(slices.Sorted(maps.Keys(demoMerchants)))
	return models.Expense{
		Amount:          s.faker.Price(20, 4000),
		Currency:        models.DefaultCurrency,
		Merchant:        merchant,
		TransactionType: models.TransactionDebited,
		Category:        demoMerchants[merchant],
		CreatedAt:       createdAt.Format(time.RFC3339),
	}
}
