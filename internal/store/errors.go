package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (ErrUserNotFound, ErrRecipeNotFound); errors.Is matches the
	// specific errors against it.
	ErrNotFound = errors.New("entity not found")

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrRecipeNotFound indicates that the requested recipe does not exist in the store.
	ErrRecipeNotFound = fmt.Errorf("%w: recipe", ErrNotFound)
)
