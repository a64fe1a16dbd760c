package memstore

import (
	"context"

	"github.com/herocorp-io/recipes-api/internal/domain"
	"github.com/herocorp-io/recipes-api/internal/store"
)

// UserStore is a read-only in-memory implementation of store.UserStore.
type UserStore struct {
	users []domain.User
}

// Ensure UserStore implements the store interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore holding the given records.
// The slice is copied so later mutation by the caller cannot leak into
// the store.
func NewUserStore(users []domain.User) *UserStore {
	records := make([]domain.User, len(users))
	copy(records, users)
	return &UserStore{users: records}
}

// GetByID retrieves a user by id.
// Returns store.ErrUserNotFound if no user has that id.
func (s *UserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail retrieves a user by email.
// Returns store.ErrUserNotFound if no user has that email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}
