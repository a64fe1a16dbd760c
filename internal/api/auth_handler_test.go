package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/herocorp-io/recipes-api/internal/api"
	"github.com/herocorp-io/recipes-api/internal/platform/memstore"
	"github.com/herocorp-io/recipes-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestAuthHandler(t *testing.T) (*api.AuthHandler, auth.TokenService) {
	t.Helper()
	tokenService := auth.NewTestTokenService(testSecret, 3*time.Hour, time.Now)
	handler := api.NewAuthHandler(
		memstore.NewUserStore(memstore.SeedUsers()),
		tokenService,
		auth.NewPlaintextVerifier(),
	)
	return handler, tokenService
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       `{"email":"bouclierman@herocorp.io","password":"jennifer"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       `{"email":"bouclierman@herocorp.io","password":"wrong"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown email",
			body:       `{"email":"nobody@herocorp.io","password":"jennifer"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty credentials are non-matching, not invalid",
			body:       `{"email":"","password":""}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestAuthHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			handler.Login(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus != http.StatusOK {
				// Failure responses carry no token
				assert.NotContains(t, recorder.Body.String(), "token")
			}
		})
	}
}

func TestAuthHandler_Login_IssuesUsableToken(t *testing.T) {
	t.Parallel()

	handler, tokenService := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"bouclierman@herocorp.io","password":"jennifer"}`))
	recorder := httptest.NewRecorder()

	handler.Login(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.True(t, resp.Logged)
	assert.Equal(t, "Bouclierman", resp.Pseudo)
	require.NotEmpty(t, resp.Token)

	// The issued token decodes back to the same user's id.
	claims, err := tokenService.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
}
