package stores

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
)

func TestFetchInfoRedirectsAnonymousUsers(t *testing.T) {
	tests := []struct {
		name      string
		config    models.ServerConfig
		wantRoute string
	}{
		{
			name:      "fresh instance wants first account",
			config:    models.ServerConfig{Initialised: false, Registration: true},
			wantRoute: nav.RouteRegister,
		},
		{
			name:      "registration closed wants login",
			config:    models.ServerConfig{Initialised: true, Registration: false},
			wantRoute: nav.RouteLogin,
		},
		{
			name:      "initialised and open stays put",
			config:    models.ServerConfig{Initialised: true, Registration: true},
			wantRoute: nav.RouteHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _, navigator := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(models.ServerInfo{Version: "0.4.1", Config: tt.config})
			}))

			s := NewServer(deps)
			require.NoError(t, s.FetchInfo(context.Background()))
			assert.Equal(t, tt.wantRoute, navigator.Current().Name)
			assert.Equal(t, "0.4.1", s.Info().Version)
		})
	}
}

func TestFetchInfoAuthenticatedStaysPut(t *testing.T) {
	deps, _, navigator := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ServerInfo{
			Config: models.ServerConfig{Initialised: true},
			User:   &models.User{Username: "alice", Role: "admin"},
		})
	}))

	s := NewServer(deps)
	require.NoError(t, s.FetchInfo(context.Background()))
	assert.Equal(t, nav.RouteHome, navigator.Current().Name)
	assert.True(t, s.LoggedIn())
}

func TestLoginRefreshesAndGoesHome(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)
		_ = json.NewEncoder(w).Encode(models.StatusResponse{Status: models.StatusSuccess})
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ServerInfo{
			Config: models.ServerConfig{Initialised: true, Registration: true},
			User:   &models.User{Username: "alice"},
		})
	})
	deps, _, navigator := newTestDeps(t, mux)

	s := NewServer(deps)
	require.NoError(t, s.Login(context.Background(), "alice", "hunter2"))

	assert.True(t, s.LoggedIn())
	assert.False(t, s.LoggingIn())
	assert.Equal(t, nav.RouteHome, navigator.Current().Name)
}

func TestLoginFailureNotifiesVerbatim(t *testing.T) {
	deps, notifier, _ := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "invalid username or password", "status": 400})
	}))

	s := NewServer(deps)
	err := s.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.False(t, s.LoggedIn())

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "invalid username or password", notes[0].Text)
}

func TestRegisterGoesToLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, creds.Password, creds.PasswordConfirm)
		_ = json.NewEncoder(w).Encode(models.StatusResponse{Status: models.StatusSuccess})
	})
	deps, _, navigator := newTestDeps(t, mux)

	s := NewServer(deps)
	require.NoError(t, s.Register(context.Background(), "alice", "hunter2", "hunter2"))
	assert.Equal(t, nav.RouteLogin, navigator.Current().Name)
}

func TestLogoutClearsUser(t *testing.T) {
	loggedOut := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		loggedOut = true
		_ = json.NewEncoder(w).Encode(models.StatusResponse{Status: models.StatusSuccess})
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		info := models.ServerInfo{Config: models.ServerConfig{Initialised: true, Registration: true}}
		if !loggedOut {
			info.User = &models.User{Username: "alice"}
		}
		_ = json.NewEncoder(w).Encode(info)
	})
	deps, _, navigator := newTestDeps(t, mux)

	s := NewServer(deps)
	require.NoError(t, s.FetchInfo(context.Background()))
	require.True(t, s.LoggedIn())

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.LoggedIn())
	assert.Equal(t, nav.RouteHome, navigator.Current().Name)
}
