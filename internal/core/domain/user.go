package domain

import "time"

// User is the mirrored identity row every authenticated action is scoped to.
// PasswordHash is empty for users provisioned through Google sign-in.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// Refresh token state; only the SHA-256 hash of the token is stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
