package services

import (
	"context"
	"errors"
	"testing"

	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"
	"expense-client/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ExpenseCacheTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *service_mocks.MockExpenseServiceInterface
	store   *SessionStore
	cache   *ExpenseCache
	ctx     context.Context
}

func TestExpenseCacheSuite(t *testing.T) {
	suite.Run(t, new(ExpenseCacheTestSuite))
}

func (s *ExpenseCacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.store = NewSessionStore()
	s.cache = NewExpenseCache(s.service, s.store, nil, nil)
	s.ctx = context.Background()
}

func (s *ExpenseCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseCacheTestSuite) authenticate() {
	s.store.set(models.SessionState{Status: models.SessionAuthenticated, Username: "alice"})
}

func expenseWithID(id string, amount float64) models.Expense {
	e := sampleExpense()
	e.ExternalID = id
	e.Amount = amount
	return e
}

func (s *ExpenseCacheTestSuite) TestRefresh_SkippedWhenSignedOut() {
	s.NoError(s.cache.Refresh(s.ctx))
	s.Empty(s.cache.List())
}

func (s *ExpenseCacheTestSuite) TestRefresh_ReplacesList() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{expenseWithID("a", 1), expenseWithID("b", 2)}, nil)

	s.Require().NoError(s.cache.Refresh(s.ctx))

	snap := s.cache.Snapshot()
	s.Len(snap.Expenses, 2)
	s.False(snap.IsLoading)
	s.Empty(snap.LastError)
}

func (s *ExpenseCacheTestSuite) TestRefresh_ErrorKeepsPreviousList() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{expenseWithID("a", 1)}, nil)
	s.Require().NoError(s.cache.Refresh(s.ctx))

	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return(nil, apperrors.NewRequestFailed(500, "db down"))
	err := s.cache.Refresh(s.ctx)

	s.Error(err)
	snap := s.cache.Snapshot()
	s.Len(snap.Expenses, 1)
	s.Equal("db down", snap.LastError)
}

func (s *ExpenseCacheTestSuite) TestAdd_Prepends() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{expenseWithID("old", 1)}, nil)
	s.Require().NoError(s.cache.Refresh(s.ctx))

	input := sampleExpense()
	s.service.EXPECT().AddExpense(gomock.Any(), input).Return(&models.Expense{ExternalID: "new", Amount: 250}, nil)

	created, err := s.cache.Add(s.ctx, input)

	s.Require().NoError(err)
	s.Equal("new", created.ExternalID)
	list := s.cache.List()
	s.Require().Len(list, 2)
	s.Equal("new", list[0].ExternalID)
	s.Equal("old", list[1].ExternalID)
}

func (s *ExpenseCacheTestSuite) TestAdd_ErrorLeavesList() {
	s.service.EXPECT().AddExpense(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))

	_, err := s.cache.Add(s.ctx, sampleExpense())

	s.Error(err)
	s.Empty(s.cache.List())
	s.Equal("offline", s.cache.Snapshot().LastError)
}

func (s *ExpenseCacheTestSuite) TestUpdate_ReplacesMatchingEntry() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{expenseWithID("a", 1), expenseWithID("b", 2)}, nil)
	s.Require().NoError(s.cache.Refresh(s.ctx))

	changed := expenseWithID("b", 99)
	s.service.EXPECT().UpdateExpense(gomock.Any(), changed).Return(&changed, nil)

	_, err := s.cache.Update(s.ctx, changed)

	s.Require().NoError(err)
	list := s.cache.List()
	s.Equal(1.0, list[0].Amount)
	s.Equal(99.0, list[1].Amount)
}

func (s *ExpenseCacheTestSuite) TestUpdate_RequiresID() {
	_, err := s.cache.Update(s.ctx, sampleExpense())

	s.ErrorIs(err, apperrors.ErrExpenseIDRequired)
	s.Equal("Expense ID is required for update", s.cache.Snapshot().LastError)
}

func (s *ExpenseCacheTestSuite) TestListReturnsCopy() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{expenseWithID("a", 1)}, nil)
	s.Require().NoError(s.cache.Refresh(s.ctx))

	list := s.cache.List()
	list[0].Amount = 1000

	s.Equal(1.0, s.cache.List()[0].Amount)
}

func (s *ExpenseCacheTestSuite) TestAnalytics() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{
		debit(60, "Food", "", ""),
		debit(40, "Travel", "", ""),
	}, nil)
	s.Require().NoError(s.cache.Refresh(s.ctx))

	got := s.cache.Analytics(models.DateWindow{})

	s.True(got.TotalExpense.Equal(dec("100")))
	s.Equal("Food", got.Categories[0].Name)
	s.Equal(60, got.Categories[0].Percentage)
}

func (s *ExpenseCacheTestSuite) TestWatch_FollowsSession() {
	stop := s.cache.Watch(s.ctx)
	defer stop()

	s.service.EXPECT().GetAllExpenses(gomock.Any()).Return([]models.Expense{expenseWithID("a", 1)}, nil).Times(1)

	s.authenticate()
	s.cache.Wait()
	s.Len(s.cache.List(), 1)

	// A repeated Authenticated publication is not a transition.
	s.authenticate()
	s.cache.Wait()

	s.store.set(models.SessionState{Status: models.SessionUnauthenticated})
	s.Empty(s.cache.List())
}

func (s *ExpenseCacheTestSuite) TestWatch_StopsAfterUnsubscribe() {
	stop := s.cache.Watch(s.ctx)
	stop()

	s.authenticate()
	s.cache.Wait()

	s.Empty(s.cache.List())
}

func (s *ExpenseCacheTestSuite) TestWatch_SignOutDuringRefreshDiscardsResult() {
	stop := s.cache.Watch(s.ctx)
	defer stop()

	started := make(chan struct{})
	release := make(chan struct{})
	s.service.EXPECT().GetAllExpenses(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Expense, error) {
		close(started)
		<-release
		return []models.Expense{expenseWithID("a", 1)}, nil
	})

	s.authenticate()
	<-started
	s.store.set(models.SessionState{Status: models.SessionUnauthenticated})
	close(release)
	s.cache.Wait()

	s.Empty(s.cache.List())
	s.False(s.cache.Snapshot().IsLoading)
}

func (s *ExpenseCacheTestSuite) TestRefresh_DiscardedWhenSessionEndsBeforeResponse() {
	s.authenticate()
	s.service.EXPECT().GetAllExpenses(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Expense, error) {
		s.store.set(models.SessionState{Status: models.SessionUnauthenticated})
		return []models.Expense{expenseWithID("a", 1)}, nil
	})

	s.NoError(s.cache.Refresh(s.ctx))
	s.Empty(s.cache.List())
}

func (s *ExpenseCacheTestSuite) TestAdd_DiscardedAfterReset() {
	s.authenticate()
	created := expenseWithID("a", 1)
	s.service.EXPECT().AddExpense(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Expense) (*models.Expense, error) {
		s.cache.reset()
		return &created, nil
	})

	got, err := s.cache.Add(s.ctx, sampleExpense())
	s.Require().NoError(err)
	s.Equal("a", got.ExternalID)
	s.Empty(s.cache.List())
}
