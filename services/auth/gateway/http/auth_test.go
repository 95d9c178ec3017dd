package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/utils"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ana@example.com", creds.Email)

		json.NewEncoder(w).Encode(utils.Response{Success: true, Data: models.AuthResponse{
			Token: "upstream-token",
			User:  models.User{ID: "user-1", Email: creds.Email, Role: models.RoleUser},
		}})
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	auth, err := client.Login(context.Background(), models.Credentials{
		Email: "ana@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", auth.Token)
	assert.Equal(t, "user-1", auth.User.ID)
}

func TestLogin_UnauthorizedIsInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), models.Credentials{
		Email: "ana@example.com", Password: "wrong",
	})
	assert.True(t, apperrors.IsInvalidCredentials(err))
	assert.False(t, apperrors.IsSessionExpired(err))
}

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(utils.Response{Success: true, Data: models.User{ID: "user-1"}})
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	user, err := client.CurrentUser(context.Background(), "upstream-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestCurrentUser_UnauthorizedIsSessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	_, err := client.CurrentUser(context.Background(), "stale-token")
	assert.True(t, apperrors.IsSessionExpired(err))
}

func TestLogout_ServerErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	err := client.Logout(context.Background(), "upstream-token")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
