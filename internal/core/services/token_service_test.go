package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wealthfolio/networth_backend/internal/apperrors"
	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/core/services"
	"github.com/wealthfolio/networth_backend/internal/platform/config"
	"github.com/wealthfolio/networth_backend/internal/utils"
)

// stubUserService serves a fixed user for refresh token validation.
type stubUserService struct {
	portssvc.UserSvcFacade
	user *domain.User
	err  error
}

func (s *stubUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.user, s.err
}

type TokenServiceTestSuite struct {
	suite.Suite
	cfg      *config.Config
	stubUser *stubUserService
	service  portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "networth-backend",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.stubUser = &stubUserService{}
	suite.service = services.NewTokenService(suite.cfg, suite.stubUser)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: "u-1"}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("u-1", claims.Subject)
	suite.Equal("networth-backend", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RejectsWrongSecret() {
	ctx := context.Background()

	token, _, err := suite.service.GenerateAccessToken(ctx, &domain.User{UserID: "u-1"})
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	suite.Require().Error(err)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	raw, _, err := suite.service.GenerateRefreshToken(ctx, &domain.User{UserID: "u-1"})
	suite.Require().NoError(err)

	expiry := time.Now().Add(time.Hour)
	suite.stubUser.user = &domain.User{
		UserID:                 "u-1",
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, "u-1", raw)

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	raw, _, err := suite.service.GenerateRefreshToken(ctx, &domain.User{UserID: "u-1"})
	suite.Require().NoError(err)

	expiry := time.Now().Add(-time.Minute)
	suite.stubUser.user = &domain.User{
		UserID:                 "u-1",
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, "u-1", raw)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_WrongToken() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	suite.stubUser.user = &domain.User{
		UserID:                 "u-1",
		RefreshTokenHash:       utils.HashRefreshToken("stored-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, "u-1", "different-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	suite.stubUser.user = &domain.User{UserID: "u-1"}

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, "u-1", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownUser() {
	ctx := context.Background()
	suite.stubUser.user = nil
	suite.stubUser.err = apperrors.ErrNotFound

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, "u-404", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
