package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/herocorp-io/recipes-api/internal/api"
	"github.com/herocorp-io/recipes-api/internal/api/shared"
	"github.com/herocorp-io/recipes-api/internal/domain"
	"github.com/herocorp-io/recipes-api/internal/platform/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipeRouter(t *testing.T) http.Handler {
	t.Helper()

	handler := api.NewRecipeHandler(
		memstore.NewRecipeStore(memstore.SeedRecipes()),
		memstore.NewUserStore(memstore.SeedUsers()),
	)

	r := chi.NewRouter()
	r.Get("/api/recipes", handler.List)
	r.Get("/api/recipes/{idOrSlug}", handler.Get)
	r.Get("/api/favorites", handler.Favorites)
	return r
}

func TestRecipeHandler_List(t *testing.T) {
	t.Parallel()

	router := newTestRecipeRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var recipes []domain.Recipe
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &recipes))
	require.Len(t, recipes, len(memstore.SeedRecipes()))
	assert.Equal(t, "crepes-sucrees", recipes[0].Slug)
}

func TestRecipeHandler_List_Idempotent(t *testing.T) {
	t.Parallel()

	router := newTestRecipeRouter(t)

	var bodies []string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		bodies = append(bodies, recorder.Body.String())
	}

	// Byte-identical responses: no hidden state mutates between reads.
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestRecipeHandler_Get(t *testing.T) {
	t.Parallel()

	router := newTestRecipeRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantID     int
	}{
		{name: "by id", path: "/api/recipes/1", wantStatus: http.StatusOK, wantID: 1},
		{name: "by slug", path: "/api/recipes/crepes-sucrees", wantStatus: http.StatusOK, wantID: 1},
		{name: "unknown id", path: "/api/recipes/999999", wantStatus: http.StatusNotFound},
		{name: "unknown slug", path: "/api/recipes/soupe-au-caillou", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var recipe domain.Recipe
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &recipe))
				assert.Equal(t, tt.wantID, recipe.ID)
			} else {
				assert.Equal(t, api.RecipeNotFoundMessage, recorder.Body.String())
			}
		})
	}
}

func TestRecipeHandler_Get_IDAndSlugResolveSameRecord(t *testing.T) {
	t.Parallel()

	router := newTestRecipeRouter(t)

	fetch := func(path string) string {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		return recorder.Body.String()
	}

	assert.Equal(t, fetch("/api/recipes/2"), fetch("/api/recipes/gratin-dauphinois"))
}

func TestRecipeHandler_Favorites(t *testing.T) {
	t.Parallel()

	router := newTestRecipeRouter(t)

	t.Run("favorites in catalog order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		req = req.WithContext(shared.WithUserID(req.Context(), 1))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp api.FavoritesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Len(t, resp.Favorites, 2)
		assert.Equal(t, 1, resp.Favorites[0].ID)
		assert.Equal(t, 3, resp.Favorites[1].ID)
	})

	t.Run("empty favorites is a valid result", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		req = req.WithContext(shared.WithUserID(req.Context(), 3))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp api.FavoritesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Favorites)
	})

	t.Run("no identity in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("identity references a deleted user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		req = req.WithContext(shared.WithUserID(req.Context(), 999))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
