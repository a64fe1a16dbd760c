package api

import (
	"errors"
	"net/http"

	"github.com/herocorp-io/recipes-api/internal/api/shared"
	"github.com/herocorp-io/recipes-api/internal/platform/logger"
	"github.com/herocorp-io/recipes-api/internal/service/auth"
	"github.com/herocorp-io/recipes-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		tokenService:     tokenService,
		passwordVerifier: passwordVerifier,
	}
}

// Login handles the POST /api/login endpoint. It exchanges an
// email/password pair for a signed token. Either outcome is terminal for
// the request: a match issues a token, anything else is 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("login request body could not be decoded", "error", err)
		shared.RespondWithStatus(w, r, http.StatusBadRequest)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected: unknown email")
			shared.RespondWithStatus(w, r, http.StatusUnauthorized)
			return
		}
		log.Error("failed to look up user by email", "error", err)
		shared.RespondWithStatus(w, r, http.StatusInternalServerError)
		return
	}

	if err := h.passwordVerifier.Compare(user.Password, req.Password); err != nil {
		log.Debug("login rejected: password mismatch", "user_id", user.ID)
		shared.RespondWithStatus(w, r, http.StatusUnauthorized)
		return
	}

	token, err := h.tokenService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithStatus(w, r, http.StatusInternalServerError)
		return
	}

	log.Info("user logged in", "user_id", user.ID, "pseudo", user.Username)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Logged: true,
		Pseudo: user.Username,
		Token:  token,
	})
}
