package dto

import "time"

// LoginResponse represents the response for a successful sign-up or sign-in.
// The refresh token itself travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// GoogleSignInRequest carries a Google ID token obtained by the web client.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
