package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-client/internal/apiclient"
	"expense-client/internal/config"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"
	"expense-client/internal/repositories"

	"github.com/stretchr/testify/suite"
)

// APIServicesTestSuite covers the thin endpoint wrappers
type APIServicesTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mux      *http.ServeMux
	ctx      context.Context
	tokens   *TokenStore
	expenses ExpenseServiceInterface
	users    UserServiceInterface
	parser   DataScienceServiceInterface
}

func TestAPIServicesSuite(t *testing.T) {
	suite.Run(t, new(APIServicesTestSuite))
}

func (s *APIServicesTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	s.tokens = NewTokenStore(repositories.NewMemoryCredentialRepository())
	s.Require().NoError(s.tokens.SetTokens(s.ctx, "A1", "R1"))

	gateway := apiclient.NewGateway(config.APIConfig{
		BaseURL:        s.server.URL,
		RequestTimeout: time.Second,
	}, s.tokens)
	s.expenses = NewExpenseService(gateway, nil)
	s.users = NewUserService(gateway)
	s.parser = NewDataScienceService(gateway, nil)
}

func (s *APIServicesTestSuite) TearDownTest() {
	s.server.Close()
}

func sampleExpense() models.Expense {
	return models.Expense{
		Amount:          250,
		Currency:        "INR",
		Merchant:        "Swiggy",
		TransactionType: models.TransactionDebited,
		Category:        "Food",
	}
}

func (s *APIServicesTestSuite) TestGetAllExpenses() {
	s.mux.HandleFunc("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("Bearer A1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.Expense{{ExternalID: "e1", Amount: 10, Currency: "INR", Merchant: "X"}})
	})

	got, err := s.expenses.GetAllExpenses(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("e1", got[0].ExternalID)
}

func (s *APIServicesTestSuite) TestGetAllExpenses_ServerError() {
	s.mux.HandleFunc("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "db down"})
	})

	_, err := s.expenses.GetAllExpenses(s.ctx)

	s.ErrorIs(err, apperrors.ErrRequestFailed)
	s.Equal("db down", apperrors.ToResult(err).Msg)
}

func (s *APIServicesTestSuite) TestAddExpense() {
	s.mux.HandleFunc("/expense/v1/addExpense", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		var in models.Expense
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&in))
		in.ExternalID = "new-1"
		writeJSON(w, http.StatusOK, in)
	})

	created, err := s.expenses.AddExpense(s.ctx, sampleExpense())

	s.Require().NoError(err)
	s.Equal("new-1", created.ExternalID)
	s.Equal("Swiggy", created.Merchant)
}

func (s *APIServicesTestSuite) TestAddExpense_RejectsInvalid() {
	e := sampleExpense()
	e.Amount = -1
	e.Merchant = ""

	_, err := s.expenses.AddExpense(s.ctx, e)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *APIServicesTestSuite) TestUpdateExpense_RequiresID() {
	_, err := s.expenses.UpdateExpense(s.ctx, sampleExpense())

	s.ErrorIs(err, apperrors.ErrExpenseIDRequired)
}

func (s *APIServicesTestSuite) TestUpdateExpense() {
	s.mux.HandleFunc("/expense/v1/updateExpense", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPatch, r.Method)
		var in models.Expense
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&in))
		s.Equal("e1", in.ExternalID)
		writeJSON(w, http.StatusOK, in)
	})

	e := sampleExpense()
	e.ExternalID = "e1"
	e.Amount = 300
	updated, err := s.expenses.UpdateExpense(s.ctx, e)

	s.Require().NoError(err)
	s.Equal(300.0, updated.Amount)
}

func (s *APIServicesTestSuite) TestGetExpensesByType() {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	s.mux.HandleFunc("/expense/v1/getExpense/by-type", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("credited", q.Get("transactionType"))
		s.Equal("2026-05-01T00:00:00.000Z", q.Get("startTime"))
		s.Empty(q.Get("endTime"))
		writeJSON(w, http.StatusOK, []models.Expense{})
	})

	got, err := s.expenses.GetExpensesByType(s.ctx, dto.ExpenseTypeFilter{
		TransactionType: models.TransactionCredited,
		StartTime:       &start,
	})

	s.NoError(err)
	s.Empty(got)
}

func (s *APIServicesTestSuite) TestGetExpensesByType_InvalidType() {
	_, err := s.expenses.GetExpensesByType(s.ctx, dto.ExpenseTypeFilter{TransactionType: "refund"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *APIServicesTestSuite) TestGetExpensesByMerchant_ChoosesEndpoint() {
	var plain, dated int
	s.mux.HandleFunc("/expense/v1/getExpense/by-merchant", func(w http.ResponseWriter, r *http.Request) {
		plain++
		s.Equal("Big Basket", r.URL.Query().Get("merchant"))
		writeJSON(w, http.StatusOK, []models.Expense{})
	})
	s.mux.HandleFunc("/expense/v1/getExpense/by-merchant-date", func(w http.ResponseWriter, r *http.Request) {
		dated++
		s.NotEmpty(r.URL.Query().Get("startTime"))
		s.NotEmpty(r.URL.Query().Get("endTime"))
		writeJSON(w, http.StatusOK, []models.Expense{})
	})

	start := time.Now().Add(-time.Hour)
	end := time.Now()
	_, err := s.expenses.GetExpensesByMerchant(s.ctx, dto.ExpenseMerchantFilter{Merchant: "Big Basket"})
	s.NoError(err)
	_, err = s.expenses.GetExpensesByMerchant(s.ctx, dto.ExpenseMerchantFilter{Merchant: "Big Basket", StartTime: &start})
	s.NoError(err)
	_, err = s.expenses.GetExpensesByMerchant(s.ctx, dto.ExpenseMerchantFilter{Merchant: "Big Basket", StartTime: &start, EndTime: &end})
	s.NoError(err)

	s.Equal(2, plain)
	s.Equal(1, dated)
}

func (s *APIServicesTestSuite) TestGetAnalytics() {
	s.mux.HandleFunc("/expense/v1/getExpense", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Expense{
			debit(100, "Food", "", ""),
			credit(40, ""),
		})
	})

	got, err := s.expenses.GetAnalytics(s.ctx, models.DateWindow{})

	s.Require().NoError(err)
	s.True(got.TotalExpense.Equal(dec("100")))
	s.True(got.NetBalance.Equal(dec("-60")))
}

func (s *APIServicesTestSuite) TestGetCurrentUser() {
	s.mux.HandleFunc("/user/v1/getUser", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.User{UserID: "u1", FirstName: "Alice", LastName: "Smith"})
	})

	user, err := s.users.GetCurrentUser(s.ctx)

	s.Require().NoError(err)
	s.Equal("Alice Smith", user.FullName())
}

func (s *APIServicesTestSuite) TestParseSMSMessage_AppliesDefaults() {
	s.mux.HandleFunc("/v1/ds/message", func(w http.ResponseWriter, r *http.Request) {
		var req dto.ParseMessageRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("Rs 250 debited", req.Message)
		writeJSON(w, http.StatusOK, map[string]any{"amount": 250})
	})

	result := s.parser.ParseSMSMessage(s.ctx, "Rs 250 debited")

	s.Require().True(result.Success)
	s.Equal(models.DefaultMerchant, result.Expense.Merchant)
	s.Equal(models.DefaultCurrency, result.Expense.Currency)
	s.Equal(models.TransactionDebited, result.Expense.TransactionType)
}

func (s *APIServicesTestSuite) TestParseSMSMessage_Failure() {
	s.mux.HandleFunc("/v1/ds/message", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "not a transaction"})
	})

	result := s.parser.ParseSMSMessage(s.ctx, "hello")

	s.False(result.Success)
	s.Equal("not a transaction", result.Message)
	s.Nil(result.Expense)
}
