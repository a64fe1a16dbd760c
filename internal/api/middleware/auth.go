package middleware

import (
	"net/http"
	"strings"

	"github.com/herocorp-io/recipes-api/internal/api/shared"
	"github.com/herocorp-io/recipes-api/internal/platform/logger"
	"github.com/herocorp-io/recipes-api/internal/service/auth"
)

// AuthMiddleware provides token-based authentication for routes.
// Identity runs on every request and only annotates the context;
// RequireIdentity is the route-level gate that turns a missing identity
// into a rejection.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Identity attempts to decode a token from the Authorization header and,
// on success, attaches the authenticated user's id to the request
// context. A missing header or a failed validation leaves the request
// without identity and is logged server-side only: this middleware never
// terminates the request itself.
//
// The token is the second whitespace-delimited field of the header; the
// scheme prefix ("Bearer") is ignored positionally, not validated.
func (m *AuthMiddleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(r.Context())

		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			log.Debug("authorization header present but carries no token",
				"path", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}
		token := parts[1]

		claims, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			// The reason stays in the logs; for control flow every
			// failure is the same: no identity attached.
			log.Debug("invalid token, proceeding without identity",
				"error", err,
				"path", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireIdentity rejects requests that reached a protected route without
// an attached identity. It does not check that the user still exists in
// the store; that is the handler's concern.
func (m *AuthMiddleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := shared.UserIDFromContext(r.Context()); !ok {
			logger.FromContext(r.Context()).Debug("rejecting request without identity",
				"path", r.URL.Path,
				"method", r.Method)
			shared.RespondWithStatus(w, r, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the authenticated user's id from the request context.
// Returns the user id and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int, bool) {
	return shared.UserIDFromContext(r.Context())
}
