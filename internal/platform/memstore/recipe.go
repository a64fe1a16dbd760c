package memstore

import (
	"context"
	"strconv"

	"github.com/herocorp-io/recipes-api/internal/domain"
	"github.com/herocorp-io/recipes-api/internal/store"
)

// RecipeStore is a read-only in-memory implementation of store.RecipeStore.
// Catalog order is the order of the slice passed at construction.
type RecipeStore struct {
	recipes []domain.Recipe
}

// Ensure RecipeStore implements the store interface
var _ store.RecipeStore = (*RecipeStore)(nil)

// NewRecipeStore creates a RecipeStore holding the given catalog.
func NewRecipeStore(recipes []domain.Recipe) *RecipeStore {
	records := make([]domain.Recipe, len(recipes))
	copy(records, recipes)
	return &RecipeStore{recipes: records}
}

// List returns the full catalog in catalog order.
func (s *RecipeStore) List(ctx context.Context) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// GetByIDOrSlug retrieves a recipe by numeric id or by slug.
// A parameter that parses as an integer is matched against ids; anything
// else is matched against slugs. Returns store.ErrRecipeNotFound when
// nothing matches.
func (s *RecipeStore) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Recipe, error) {
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		for i := range s.recipes {
			if s.recipes[i].ID == id {
				recipe := s.recipes[i]
				return &recipe, nil
			}
		}
		return nil, store.ErrRecipeNotFound
	}

	for i := range s.recipes {
		if s.recipes[i].Slug == idOrSlug {
			recipe := s.recipes[i]
			return &recipe, nil
		}
	}
	return nil, store.ErrRecipeNotFound
}

// ListByIDs returns the recipes whose id appears in ids, preserving
// catalog order. Unknown ids are skipped; an empty result is valid.
func (s *RecipeStore) ListByIDs(ctx context.Context, ids []int) ([]domain.Recipe, error) {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]domain.Recipe, 0, len(wanted))
	for i := range s.recipes {
		if _, ok := wanted[s.recipes[i].ID]; ok {
			out = append(out, s.recipes[i])
		}
	}
	return out, nil
}
