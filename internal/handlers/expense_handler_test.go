package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"expense-client/internal/backend"
	"expense-client/internal/backend/backend_mocks"
	"expense-client/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	expenseService *backend_mocks.MockExpenseServiceInterface
	handler        *ExpenseHandler
	e              *echo.Echo
	userID         uuid.UUID
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseService = backend_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.expenseService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseHandlerSuite) request(method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(UserIDContextKey, s.userID)
	return c, rec
}

func (s *ExpenseHandlerSuite) TestGetExpenses() {
	expenses := []models.Expense{{ExternalID: "e1", Amount: 10, Currency: "INR", Merchant: "Swiggy"}}
	s.expenseService.EXPECT().List(gomock.Any(), s.userID, models.ExpenseRecordFilter{}).Return(expenses, nil).Times(1)

	c, rec := s.request(http.MethodGet, "/expense/v1/getExpense", nil)
	s.NoError(s.handler.GetExpenses(c))
	s.Equal(http.StatusOK, rec.Code)

	var got []models.Expense
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(expenses, got)
}

func (s *ExpenseHandlerSuite) TestGetExpensesEmptyListIsArray() {
	s.expenseService.EXPECT().List(gomock.Any(), s.userID, gomock.Any()).Return([]models.Expense{}, nil).Times(1)

	c, rec := s.request(http.MethodGet, "/expense/v1/getExpense", nil)
	s.NoError(s.handler.GetExpenses(c))
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *ExpenseHandlerSuite) TestGetExpensesRequiresUser() {
	req := httptest.NewRequest(http.MethodGet, "/expense/v1/getExpense", nil)
	rec := httptest.NewRecorder()

	s.NoError(s.handler.GetExpenses(s.e.NewContext(req, rec)))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ExpenseHandlerSuite) TestGetExpensesByType() {
	q := url.Values{}
	q.Set("transactionType", models.TransactionCredited)
	q.Set("startTime", "2026-05-01T00:00:00.000Z")
	q.Set("endTime", "2026-05-31T23:59:59.000Z")

	s.expenseService.EXPECT().List(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, filter models.ExpenseRecordFilter) ([]models.Expense, error) {
			s.Equal(models.TransactionCredited, filter.TransactionType)
			s.Require().NotNil(filter.StartTime)
			s.Require().NotNil(filter.EndTime)
			s.True(filter.StartTime.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
			return nil, nil
		}).Times(1)

	c, rec := s.request(http.MethodGet, "/expense/v1/getExpense/by-type?"+q.Encode(), nil)
	s.NoError(s.handler.GetExpensesByType(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestGetExpensesByTypeValidation() {
	tests := []struct {
		name  string
		query string
	}{
		{"missing type", ""},
		{"unknown type", "transactionType=refund"},
		{"bad timestamp", "transactionType=debited&startTime=yesterday"},
		{"inverted range", "transactionType=debited&startTime=2026-05-02T00:00:00Z&endTime=2026-05-01T00:00:00Z"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.request(http.MethodGet, "/expense/v1/getExpense/by-type?"+tt.query, nil)
			s.NoError(s.handler.GetExpensesByType(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *ExpenseHandlerSuite) TestGetExpensesByMerchant() {
	s.expenseService.EXPECT().List(gomock.Any(), s.userID, models.ExpenseRecordFilter{Merchant: "Swiggy"}).Return(nil, nil).Times(1)

	c, rec := s.request(http.MethodGet, "/expense/v1/getExpense/by-merchant?merchant=Swiggy", nil)
	s.NoError(s.handler.GetExpensesByMerchant(c))
	s.Equal(http.StatusOK, rec.Code)

	c, rec = s.request(http.MethodGet, "/expense/v1/getExpense/by-merchant", nil)
	s.NoError(s.handler.GetExpensesByMerchant(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerSuite) TestGetExpensesByMerchantDateRequiresRange() {
	c, rec := s.request(http.MethodGet, "/expense/v1/getExpense/by-merchant-date?merchant=Swiggy&startTime=2026-05-01", nil)
	s.NoError(s.handler.GetExpensesByMerchantDate(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	s.expenseService.EXPECT().List(gomock.Any(), s.userID, gomock.Any()).Return(nil, nil).Times(1)
	c, rec = s.request(http.MethodGet, "/expense/v1/getExpense/by-merchant-date?merchant=Swiggy&startTime=2026-05-01&endTime=2026-05-02", nil)
	s.NoError(s.handler.GetExpensesByMerchantDate(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestAddExpense() {
	input := models.Expense{Amount: 250, Currency: "INR", Merchant: "Swiggy", TransactionType: models.TransactionDebited}
	created := input
	created.ExternalID = uuid.NewString()

	s.expenseService.EXPECT().Add(gomock.Any(), s.userID, input).Return(&created, nil).Times(1)

	c, rec := s.request(http.MethodPost, "/expense/v1/addExpense", input)
	s.NoError(s.handler.AddExpense(c))
	s.Equal(http.StatusOK, rec.Code)

	var got models.Expense
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(created.ExternalID, got.ExternalID)
}

func (s *ExpenseHandlerSuite) TestAddExpenseValidation() {
	c, rec := s.request(http.MethodPost, "/expense/v1/addExpense", models.Expense{Amount: -1, Currency: "INR", Merchant: "x"})
	s.NoError(s.handler.AddExpense(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	c, rec = s.request(http.MethodPost, "/expense/v1/addExpense", models.Expense{Amount: 1, Currency: "INR", Merchant: "x", TransactionType: "refund"})
	s.NoError(s.handler.AddExpense(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense() {
	input := models.Expense{ExternalID: uuid.NewString(), Amount: 300, Currency: "INR", Merchant: "Swiggy"}
	s.expenseService.EXPECT().Update(gomock.Any(), s.userID, input).Return(&input, nil).Times(1)

	c, rec := s.request(http.MethodPatch, "/expense/v1/updateExpense", input)
	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpenseErrors() {
	s.Run("missing external id", func() {
		c, rec := s.request(http.MethodPatch, "/expense/v1/updateExpense", models.Expense{Amount: 1, Currency: "INR", Merchant: "x"})
		s.NoError(s.handler.UpdateExpense(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "VALIDATION_002")
	})

	s.Run("unknown expense", func() {
		s.expenseService.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).Return(nil, backend.ErrExpenseNotFound).Times(1)

		c, rec := s.request(http.MethodPatch, "/expense/v1/updateExpense", models.Expense{ExternalID: "missing", Amount: 1, Currency: "INR", Merchant: "x"})
		s.NoError(s.handler.UpdateExpense(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("storage failure", func() {
		s.expenseService.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).Return(nil, errors.New("locked")).Times(1)

		c, rec := s.request(http.MethodPatch, "/expense/v1/updateExpense", models.Expense{ExternalID: "id", Amount: 1, Currency: "INR", Merchant: "x"})
		s.NoError(s.handler.UpdateExpense(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
