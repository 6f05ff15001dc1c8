package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/dto"
	"github.com/docforge/docforge/internal/models"
)

func TestRegister(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/register", map[string]string{
		"email":    "new@example.com",
		"username": "newuser",
		"password": "supersecret",
	}, "")

	requireStatus(t, w, http.StatusCreated)

	var response dto.UserDTO
	decodeJSON(t, w, &response)
	require.Equal(t, "new@example.com", response.Email)
	require.Equal(t, "newuser", response.Username)

	// the stored password must be hashed, never the plaintext
	var stored models.User
	require.NoError(t, env.db.First(&stored, response.ID).Error)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "supersecret", stored.PasswordHash)
	require.NotContains(t, w.Body.String(), stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "taken@example.com", "first")

	w := env.request(t, http.MethodPost, "/register", map[string]string{
		"email":    "taken@example.com",
		"username": "second",
		"password": "supersecret",
	}, "")

	requireStatus(t, w, http.StatusConflict)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "first@example.com", "taken")

	w := env.request(t, http.MethodPost, "/register", map[string]string{
		"email":    "second@example.com",
		"username": "taken",
		"password": "supersecret",
	}, "")

	requireStatus(t, w, http.StatusConflict)
}

func TestToken(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "user@example.com", "existing")

	w := env.request(t, http.MethodPost, "/token", map[string]string{
		"username": "existing",
		"password": "supersecret",
	}, "")

	requireStatus(t, w, http.StatusOK)

	var response dto.TokenDTO
	decodeJSON(t, w, &response)
	require.Equal(t, "bearer", response.TokenType)
	require.NotEmpty(t, response.AccessToken)

	// the issued token must resolve on a protected endpoint
	me := env.request(t, http.MethodGet, "/users/me", nil, response.AccessToken)
	requireStatus(t, me, http.StatusOK)

	var current dto.UserDTO
	decodeJSON(t, me, &current)
	require.Equal(t, "existing", current.Username)
}

func TestToken_BadCredentials(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "user@example.com", "existing")

	w := env.request(t, http.MethodPost, "/token", map[string]string{
		"username": "existing",
		"password": "wrong-password",
	}, "")

	requireStatus(t, w, http.StatusUnauthorized)
}

func TestProtectedEndpoint_MissingToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/users/me", nil, "")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestProtectedEndpoint_TamperedToken(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerUser(t, "user@example.com", "existing")

	w := env.request(t, http.MethodGet, "/users/me", nil, token[:len(token)-2]+"xx")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestProtectedEndpoint_TokenForDeletedUser(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerUser(t, "user@example.com", "existing")

	require.NoError(t, env.db.Delete(&models.User{}, user.ID).Error)

	w := env.request(t, http.MethodGet, "/users/me", nil, token)
	requireStatus(t, w, http.StatusUnauthorized)
}
