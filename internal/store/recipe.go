package store

import (
	"context"

	"github.com/herocorp-io/recipes-api/internal/domain"
)

// RecipeStore defines the read-only interface for the recipe catalog.
// Implementations are loaded once at startup and must be safe for
// concurrent reads. All listing operations preserve catalog order.
type RecipeStore interface {
	// List returns the full catalog in catalog order.
	List(ctx context.Context) ([]domain.Recipe, error)

	// GetByIDOrSlug retrieves a recipe by a path parameter that is either
	// a numeric id or a slug. A parameter that parses as an integer is
	// matched against recipe ids first; otherwise it is matched against
	// slugs. Returns ErrRecipeNotFound if nothing matches.
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Recipe, error)

	// ListByIDs returns the recipes whose id appears in ids, in catalog
	// order regardless of the order of ids. Unknown ids are skipped.
	// An empty result is valid, not an error.
	ListByIDs(ctx context.Context, ids []int) ([]domain.Recipe, error)
}
