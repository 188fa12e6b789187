package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// TokenSvcFacade handles JWT access tokens and opaque refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// along with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its expiry.
	// Only a hash of the token is ever persisted.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the stored hash and expiry and returns the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google sign-in flows.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's profile with the access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates an ID token obtained by the web client.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
