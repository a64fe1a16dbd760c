package domain_test

import (
	"testing"

	"github.com/herocorp-io/recipes-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUser_IsFavorite(t *testing.T) {
	user := &domain.User{
		ID:        1,
		Email:     "bouclierman@herocorp.io",
		Username:  "Bouclierman",
		Favorites: []int{1, 3},
	}

	assert.True(t, user.IsFavorite(1))
	assert.True(t, user.IsFavorite(3))
	assert.False(t, user.IsFavorite(2))
	assert.False(t, user.IsFavorite(0))

	empty := &domain.User{ID: 2}
	assert.False(t, empty.IsFavorite(1))
}
