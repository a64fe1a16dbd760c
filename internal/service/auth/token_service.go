package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing the authentication tokens
// that gate access to per-user views.
type TokenService interface {
	// GenerateToken creates a signed token carrying the user's identity.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID int) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or one of the
	// sentinel errors in errors.go if validation fails (expired, invalid
	// signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded identity payload carried by a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int `json:"userId"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
