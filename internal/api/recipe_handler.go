package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/herocorp-io/recipes-api/internal/api/shared"
	"github.com/herocorp-io/recipes-api/internal/platform/logger"
	"github.com/herocorp-io/recipes-api/internal/store"
)

// RecipeNotFoundMessage is the body returned when no recipe matches the
// requested id or slug.
const RecipeNotFoundMessage = "The recipe with the given ID or Slug was not found."

// RecipeHandler handles catalog and favorites API requests.
type RecipeHandler struct {
	recipeStore store.RecipeStore
	userStore   store.UserStore
}

// NewRecipeHandler creates a new RecipeHandler with the given dependencies.
func NewRecipeHandler(recipeStore store.RecipeStore, userStore store.UserStore) *RecipeHandler {
	return &RecipeHandler{
		recipeStore: recipeStore,
		userStore:   userStore,
	}
}

// List handles the GET /api/recipes endpoint.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipeStore.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list recipes", "error", err)
		shared.RespondWithStatus(w, r, http.StatusInternalServerError)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, recipes)
}

// Get handles the GET /api/recipes/{idOrSlug} endpoint. The path
// parameter resolves by numeric id or by slug, whichever matches.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	idOrSlug := chi.URLParam(r, "idOrSlug")

	recipe, err := h.recipeStore.GetByIDOrSlug(r.Context(), idOrSlug)
	if err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			log.Debug("recipe not found", "id_or_slug", idOrSlug)
			shared.RespondWithText(w, r, http.StatusNotFound, RecipeNotFoundMessage)
			return
		}
		log.Error("failed to get recipe", "error", err, "id_or_slug", idOrSlug)
		shared.RespondWithStatus(w, r, http.StatusInternalServerError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recipe)
}

// Favorites handles the GET /api/favorites endpoint. The route is mounted
// behind the identity guard, so an attached identity is expected; a claim
// whose user id no longer resolves in the store is treated as an
// authorization failure rather than an empty list.
func (h *RecipeHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		log.Warn("favorites reached without identity in context")
		shared.RespondWithStatus(w, r, http.StatusUnauthorized)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("token references a user that no longer exists", "user_id", userID)
			shared.RespondWithStatus(w, r, http.StatusUnauthorized)
			return
		}
		log.Error("failed to look up user", "error", err, "user_id", userID)
		shared.RespondWithStatus(w, r, http.StatusInternalServerError)
		return
	}

	favorites, err := h.recipeStore.ListByIDs(r.Context(), user.Favorites)
	if err != nil {
		log.Error("failed to list favorite recipes", "error", err, "user_id", userID)
		shared.RespondWithStatus(w, r, http.StatusInternalServerError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FavoritesResponse{Favorites: favorites})
}
