package store

import (
	"context"

	"github.com/herocorp-io/recipes-api/internal/domain"
)

// UserStore defines the read-only interface for user lookups.
// Implementations are loaded once at startup and must be safe for
// concurrent reads.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Emails are unique within the store.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
