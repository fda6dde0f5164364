package repositories

import (
	"context"
	"testing"

	"expense-client/internal/database"
	"expense-client/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserAccountRepository(t *testing.T) {
	suite.Run(t, new(UserAccountRepositorySuite))
}

type UserAccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserAccountRepositoryInterface
	ctx  context.Context
}

func (s *UserAccountRepositorySuite) SetupTest() {
	s.db = database.SetupBackendTestDB(s.T())
	s.repo = NewUserAccountRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *UserAccountRepositorySuite) newUser(username string) *models.UserAccount {
	return &models.UserAccount{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
	}
}

func (s *UserAccountRepositorySuite) TestCreate() {
	user := s.newUser("alice")

	err := s.repo.Create(s.ctx, user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserAccountRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *UserAccountRepositorySuite) TestCreate_DuplicateUsername() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newUser("bob")))

	err := s.repo.Create(s.ctx, s.newUser("bob"))
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserAccountRepositorySuite) TestCreate_BlankUsername() {
	err := s.repo.Create(s.ctx, s.newUser("   "))
	s.ErrorIs(err, models.ErrUsernameRequired)
}

func (s *UserAccountRepositorySuite) TestGetByUsername() {
	user := s.newUser("carol")
	s.Require().NoError(s.repo.Create(s.ctx, user))

	found, err := s.repo.GetByUsername(s.ctx, " carol ")
	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal("carol@example.com", found.Email)

	_, err = s.repo.GetByUsername(s.ctx, "nobody")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserAccountRepositorySuite) TestGetByID() {
	user := s.newUser("dave")
	s.Require().NoError(s.repo.Create(s.ctx, user))

	found, err := s.repo.GetByID(s.ctx, user.ID)
	s.NoError(err)
	s.Equal("dave", found.Username)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.Equal(ErrUserNotFound, err)
}
