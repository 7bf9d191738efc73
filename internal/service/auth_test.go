package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/salescrm/internal/auth"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/model"
	rpsMocks "github.com/umalmyha/salescrm/internal/repository/mocks"
	trxMocks "github.com/umalmyha/salescrm/pkg/db/transactor/mocks"
)

const (
	testUserEmail    = "tony@stark.com"
	testUserPassword = "s3cr3t-p4ssw0rd"
	testFingerprint  = "2b25bda4-9291-4c14-a5cd-d3d62bf204b0"
)

type authServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	now            time.Time
	user           *model.User
	authSvc        AuthService
	trxMock        *trxMocks.Transactor
	userRpsMock    *rpsMocks.UserRepository
	rfrTknRpsMock  *rpsMocks.RefreshTokenRepository
	jwtIssuer      *auth.JwtIssuer
	rfrTokenIssuer *auth.RefreshTokenIssuer
}

func (s *authServiceTestSuite) SetupSuite() {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		s.T().Fatal(err)
	}

	jwtIssuer := auth.NewJwtIssuer("salescrm", jwt.SigningMethodEdDSA, 10*time.Minute, privateKey)
	s.rfrTokenIssuer = auth.NewRefreshTokenIssuer(5, 720*time.Hour)
	s.now = time.Date(2022, time.October, 14, 10, 0, 0, 0, time.UTC)

	hash, err := auth.GeneratePasswordHash(testUserPassword)
	if err != nil {
		s.T().Fatal(err)
	}

	s.user = &model.User{
		ID:           testOwnerID,
		Name:         "Tony Stark",
		Email:        testUserEmail,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	s.jwtIssuer = jwtIssuer
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()

	s.trxMock = trxMocks.NewTransactor(t)
	s.userRpsMock = rpsMocks.NewUserRepository(t)
	s.rfrTknRpsMock = rpsMocks.NewRefreshTokenRepository(t)
	s.authSvc = NewAuthService(s.trxMock, s.jwtIssuer, s.rfrTokenIssuer, s.userRpsMock, s.rfrTknRpsMock)
}

func (s *authServiceTestSuite) passThroughTransaction() {
	s.trxMock.On("WithinTransaction", mock.Anything, mock.AnythingOfType("func(context.Context) error")).Return(
		func(ctx context.Context, txFunc func(context.Context) error) error {
			return txFunc(ctx)
		},
	)
}

func (s *authServiceTestSuite) TestSignup() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.userRpsMock.On("FindByEmail", ctx, "steve@avengers.com").Return(nil, nil).Once()
	s.userRpsMock.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil).Once()

	s.T().Log("new account must be registered with hashed password and default role")
	{
		u, err := s.authSvc.Signup(ctx, "Steve Rogers", "steve@avengers.com", testUserPassword)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.RoleUser, u.Role, "role must default to User")
		s.Assert().NotEqual(testUserPassword, u.PasswordHash, "password must never be stored as-is")
		s.Assert().NoError(auth.VerifyPassword(u.PasswordHash, testUserPassword), "hash must verify against original password")
	}
}

func (s *authServiceTestSuite) TestSignupEmailTaken() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.userRpsMock.On("FindByEmail", ctx, testUserEmail).Return(s.user, nil).Once()

	s.T().Log("taken email must be rejected as conflict")
	{
		_, err := s.authSvc.Signup(ctx, "Tony Stark", testUserEmail, testUserPassword)
		s.Assert().ErrorAs(err, new(*errs.ConflictErr), "conflict error must be raised")
		s.userRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.User"))
	}
}

func (s *authServiceTestSuite) TestLogin() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.userRpsMock.On("FindByEmail", ctx, testUserEmail).Return(s.user, nil).Once()
	s.rfrTknRpsMock.On("FindTokensByUserID", ctx, s.user.ID).Return([]*model.RefreshToken{}, nil).Once()
	s.rfrTknRpsMock.On("Create", ctx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Log("valid credentials must produce jwt and persisted refresh token")
	{
		jwtToken, rfrToken, err := s.authSvc.Login(ctx, testUserEmail, testUserPassword, testFingerprint, s.now)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(jwtToken.Signed, "jwt must be signed")
		s.Assert().Equal(s.now.Add(10*time.Minute).Unix(), jwtToken.ExpiresAt, "jwt expiration must follow configured ttl")
		s.Assert().Equal(s.user.ID, rfrToken.UserID)
		s.Assert().Equal(testFingerprint, rfrToken.Fingerprint)
	}
}

func (s *authServiceTestSuite) TestLoginPrunesTokensOverMaxCount() {
	ctx := s.ctx

	issued := make([]*model.RefreshToken, 0, 5)
	for i := 0; i < 5; i++ {
		issued = append(issued, s.rfrTokenIssuer.Sign(s.user.ID, testFingerprint, s.now))
	}

	s.passThroughTransaction()
	s.userRpsMock.On("FindByEmail", ctx, testUserEmail).Return(s.user, nil).Once()
	s.rfrTknRpsMock.On("FindTokensByUserID", ctx, s.user.ID).Return(issued, nil).Once()
	s.rfrTknRpsMock.On("DeleteByUserID", ctx, s.user.ID).Return(nil).Once()
	s.rfrTknRpsMock.On("Create", ctx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Log("all user tokens must be dropped when allowed count is reached")
	{
		_, _, err := s.authSvc.Login(ctx, testUserEmail, testUserPassword, testFingerprint, s.now)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *authServiceTestSuite) TestLoginWrongPassword() {
	ctx := s.ctx

	s.userRpsMock.On("FindByEmail", ctx, testUserEmail).Return(s.user, nil).Once()

	s.T().Log("wrong password must be rejected without hinting which part is wrong")
	{
		_, _, err := s.authSvc.Login(ctx, testUserEmail, "wrong-password", testFingerprint, s.now)
		s.Assert().ErrorAs(err, new(*errs.UnauthorizedErr), "unauthorized error must be raised")
	}
}

func (s *authServiceTestSuite) TestLoginUnknownEmail() {
	ctx := s.ctx

	s.userRpsMock.On("FindByEmail", ctx, "unknown@avengers.com").Return(nil, nil).Once()

	s.T().Log("unknown email must be rejected without hinting which part is wrong")
	{
		_, _, err := s.authSvc.Login(ctx, "unknown@avengers.com", testUserPassword, testFingerprint, s.now)
		s.Assert().ErrorAs(err, new(*errs.UnauthorizedErr), "unauthorized error must be raised")
	}
}

func (s *authServiceTestSuite) TestRefresh() {
	ctx := s.ctx
	rfrToken := s.rfrTokenIssuer.Sign(s.user.ID, testFingerprint, s.now)

	s.passThroughTransaction()
	s.rfrTknRpsMock.On("FindByID", ctx, rfrToken.ID).Return(rfrToken, nil).Once()
	s.rfrTknRpsMock.On("DeleteByID", ctx, rfrToken.ID).Return(nil).Once()
	s.userRpsMock.On("FindByID", ctx, s.user.ID).Return(s.user, nil).Once()
	s.rfrTknRpsMock.On("Create", ctx, mock.AnythingOfType("*model.RefreshToken")).Return(nil).Once()

	s.T().Log("refresh must rotate the token and issue new jwt")
	{
		jwtToken, newRfrToken, err := s.authSvc.Refresh(ctx, rfrToken.ID, testFingerprint, s.now.Add(time.Hour))
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(jwtToken.Signed, "jwt must be signed")
		s.Assert().NotEqual(rfrToken.ID, newRfrToken.ID, "refresh token must be rotated")
	}
}

func (s *authServiceTestSuite) TestRefreshUnknownToken() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.rfrTknRpsMock.On("FindByID", ctx, "missing-token-id").Return(nil, nil).Once()

	s.T().Log("unknown refresh token must be rejected")
	{
		_, _, err := s.authSvc.Refresh(ctx, "missing-token-id", testFingerprint, s.now)
		s.Assert().ErrorAs(err, new(*errs.UnauthorizedErr), "unauthorized error must be raised")
	}
}

func (s *authServiceTestSuite) TestRefreshWrongFingerprint() {
	ctx := s.ctx
	rfrToken := s.rfrTokenIssuer.Sign(s.user.ID, testFingerprint, s.now)

	s.passThroughTransaction()
	s.rfrTknRpsMock.On("FindByID", ctx, rfrToken.ID).Return(rfrToken, nil).Once()
	s.rfrTknRpsMock.On("DeleteByID", ctx, rfrToken.ID).Return(nil).Once()

	s.T().Log("token presented from another client must be revoked and rejected")
	{
		_, _, err := s.authSvc.Refresh(ctx, rfrToken.ID, "another-fingerprint", s.now)
		s.Assert().ErrorAs(err, new(*errs.UnauthorizedErr), "unauthorized error must be raised")
		s.rfrTknRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.RefreshToken"))
	}
}

func (s *authServiceTestSuite) TestLogout() {
	ctx := s.ctx

	s.rfrTknRpsMock.On("DeleteByID", ctx, testFingerprint).Return(nil).Once()

	s.T().Log("logout must drop presented refresh token")
	{
		err := s.authSvc.Logout(ctx, testFingerprint)
		s.Assert().NoError(err, "no error must be raised")
	}
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
