package api

import "github.com/herocorp-io/recipes-api/internal/domain"

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
// Fields carry no validation tags on purpose: an empty or malformed email
// is a legal, simply non-matching credential and must yield 401, not a
// validation error.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Logged is always true on a successful login.
	Logged bool `json:"logged"`

	// Pseudo is the authenticated user's display name.
	Pseudo string `json:"pseudo"`

	// Token is the signed token to present on subsequent requests.
	Token string `json:"token"`
}

// FavoritesResponse wraps the recipes the authenticated user marked as
// favorites, in catalog order.
type FavoritesResponse struct {
	Favorites []domain.Recipe `json:"favorites"`
}
