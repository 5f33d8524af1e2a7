//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// authTestConfig builds an admin auth config whose password is the given
// plaintext.
func authTestConfig(t *testing.T, password string) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return config.AuthConfig{
		Enabled:           true,
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		TokenDuration:     time.Hour,
	}
}

func loginBody(t *testing.T, username, password string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestAuthHandler_Login(t *testing.T) {
	authService := service.NewAuthService(authTestConfig(t, "kitchen-pass"))
	router := newStoreTestRouter(t, func(cfg *RouterConfig) {
		cfg.EnableAuth = true
		cfg.AuthService = authService
	})

	t.Run("valid credentials return a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginBody(t, "admin", "kitchen-pass"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		// The token opens the admin surface
		adminReq := httptest.NewRequest(http.MethodGet, "/api/combos-history", nil)
		adminReq.Header.Set("Authorization", "Bearer "+resp.Token)
		adminW := httptest.NewRecorder()
		router.ServeHTTP(adminW, adminReq)

		// History without Mongo fails inside the service, but the token got
		// the request past the auth middleware
		assert.NotEqual(t, http.StatusUnauthorized, adminW.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginBody(t, "admin", "wrong-pass"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown username", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginBody(t, "nobody", "kitchen-pass"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username": "admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
