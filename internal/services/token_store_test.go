package services

import (
	"context"
	"errors"
	"testing"

	"expense-client/internal/models"
	"expense-client/internal/repositories"
	"expense-client/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TokenStoreTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *repositories.MemoryCredentialRepository
	sut  *TokenStore
}

func TestTokenStoreSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreTestSuite))
}

func (s *TokenStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = repositories.NewMemoryCredentialRepository()
	s.sut = NewTokenStore(s.repo)
}

func (s *TokenStoreTestSuite) TestEmptyStoreReadsBlank() {
	creds, err := s.sut.Load(s.ctx)

	s.NoError(err)
	s.Equal(models.Credentials{}, creds)
}

func (s *TokenStoreTestSuite) TestSaveCredentialsRoundTrip() {
	s.Require().NoError(s.sut.SaveCredentials(s.ctx, models.Credentials{
		AccessToken: "A1", RefreshToken: "R1", Username: "alice",
	}))

	access, _ := s.sut.AccessToken(s.ctx)
	refresh, _ := s.sut.RefreshToken(s.ctx)
	username, _ := s.sut.Username(s.ctx)
	s.Equal("A1", access)
	s.Equal("R1", refresh)
	s.Equal("alice", username)
}

func (s *TokenStoreTestSuite) TestSetTokensKeepsUsername() {
	s.Require().NoError(s.sut.SaveCredentials(s.ctx, models.Credentials{
		AccessToken: "A1", RefreshToken: "R1", Username: "alice",
	}))

	s.Require().NoError(s.sut.SetTokens(s.ctx, "A2", "R2"))

	creds, err := s.sut.Load(s.ctx)
	s.NoError(err)
	s.Equal(models.Credentials{AccessToken: "A2", RefreshToken: "R2", Username: "alice"}, creds)
}

func (s *TokenStoreTestSuite) TestClearRemovesEverything() {
	s.Require().NoError(s.sut.SaveCredentials(s.ctx, models.Credentials{
		AccessToken: "A1", RefreshToken: "R1", Username: "alice",
	}))

	s.NoError(s.sut.Clear(s.ctx))
	s.Empty(s.repo.Keys())
	s.NoError(s.sut.Clear(s.ctx))
}

func (s *TokenStoreTestSuite) TestClearAttemptsAllKeys() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCredentialRepositoryInterface(ctrl)
	boom := errors.New("keychain locked")
	repo.EXPECT().Remove(gomock.Any(), models.CredentialAccessToken).Return(boom)
	repo.EXPECT().Remove(gomock.Any(), models.CredentialRefreshToken).Return(nil)
	repo.EXPECT().Remove(gomock.Any(), models.CredentialUsername).Return(nil)

	err := NewTokenStore(repo).Clear(s.ctx)

	s.ErrorIs(err, boom)
}

func (s *TokenStoreTestSuite) TestReadErrorPropagates() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCredentialRepositoryInterface(ctrl)
	boom := errors.New("disk gone")
	repo.EXPECT().Get(gomock.Any(), models.CredentialAccessToken).Return("", boom)

	_, err := NewTokenStore(repo).Load(s.ctx)

	s.ErrorIs(err, boom)
}
