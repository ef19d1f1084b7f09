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

func TestAdminFetchInfo(t *testing.T) {
	deps, _, _ := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.AdminInfo{
			Settings:     map[string]string{"registration": "disabled"},
			ProjectStats: models.AdminProjectStats{Total: 8, Inactive: 1},
		})
	}))

	a := NewAdmin(deps)
	require.NoError(t, a.FetchInfo(context.Background()))

	info := a.Info()
	assert.Equal(t, "disabled", info.Settings["registration"])
	assert.Equal(t, 8, info.ProjectStats.Total)
	assert.False(t, a.Loading())
}

func TestUpdateSettingConvertsBooleans(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "true becomes enabled", value: true, want: "enabled"},
		{name: "false becomes disabled", value: false, want: "disabled"},
		{name: "strings pass through", value: "strict", want: "strict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _, _ := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPatch, r.Method)
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, tt.want, body["registration"])
				_ = json.NewEncoder(w).Encode(models.AdminInfo{
					Settings: map[string]string{"registration": tt.want},
				})
			}))

			a := NewAdmin(deps)
			require.NoError(t, a.UpdateSetting(context.Background(), "registration", tt.value))
			assert.Equal(t, tt.want, a.Info().Settings["registration"])
		})
	}
}

func TestAdminUsersFetchReadsUsersKey(t *testing.T) {
	deps, _, _ := newTestDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"users": []models.AdminUser{
				{ID: 1, Username: "alice", Role: "admin", State: "active"},
				{ID: 2, Username: "bob", Role: "user", State: "active"},
			},
			"total": 2, "count": 2, "pages": 1,
		})
	}))

	a := NewAdmin(deps)
	require.NoError(t, a.Users.Fetch(context.Background(), nav.ListQuery{}))

	v := a.Users.View()
	require.Len(t, v.Data, 2)
	assert.Equal(t, "alice", v.Data[0].Username)
}

func TestAdminUserUpdateReconciles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/users", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"users": []models.AdminUser{{ID: 2, Username: "bob", Role: "user", State: "active"}},
			"total": 1, "count": 1, "pages": 1,
		})
	})
	mux.HandleFunc("PATCH /admin/users/2", func(w http.ResponseWriter, r *http.Request) {
		var body AdminUserUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body.Role)
		_ = json.NewEncoder(w).Encode(models.AdminUser{ID: 2, Username: "bob", Role: "admin", State: "active"})
	})
	deps, _, _ := newTestDeps(t, mux)

	a := NewAdmin(deps)
	require.NoError(t, a.Users.Fetch(context.Background(), nav.ListQuery{}))
	require.NoError(t, a.Users.Update(context.Background(), 2, AdminUserUpdate{Role: "admin"}))

	v := a.Users.View()
	require.Len(t, v.Data, 1)
	assert.Equal(t, "admin", v.Data[0].Role)
}
