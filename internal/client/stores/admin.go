package stores

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
)

const adminUsersPath = "/admin/users"

// Admin holds the instance settings and stats plus the paginated user
// administration list.
type Admin struct {
	deps Deps

	mu      sync.Mutex
	loading bool
	info    models.AdminInfo

	// Users is the paginated user-management collection.
	Users *AdminUsers
}

// AdminUsers is the collection of accounts in the admin screens.
type AdminUsers struct {
	*Collection[models.AdminUser]
}

func NewAdmin(deps Deps) *Admin {
	return &Admin{
		deps: deps,
		Users: &AdminUsers{newCollection[models.AdminUser](deps, collectionConfig{
			path: adminUsersPath,
		})},
	}
}

// Info returns a copy of the last fetched settings and stats.
func (a *Admin) Info() models.AdminInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.info
}

// Loading reports whether an admin fetch is in flight.
func (a *Admin) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// FetchInfo loads the settings, stats and user summary from GET /admin.
func (a *Admin) FetchInfo(ctx context.Context) error {
	a.mu.Lock()
	a.loading = true
	a.mu.Unlock()

	var info models.AdminInfo
	err := a.deps.API.Get(ctx, "/admin", nil, &info)

	a.mu.Lock()
	a.loading = false
	if err == nil {
		a.info = info
	}
	a.mu.Unlock()

	if err != nil {
		a.deps.Intercept.Handle(err)
		return err
	}
	return nil
}

// UpdateSetting patches a single instance setting. Booleans are sent as the
// server's "enabled"/"disabled" strings, everything else as its string form.
func (a *Admin) UpdateSetting(ctx context.Context, name string, value any) error {
	text := ""
	switch v := value.(type) {
	case bool:
		if v {
			text = "enabled"
		} else {
			text = "disabled"
		}
	case string:
		text = v
	default:
		text = fmt.Sprintf("%v", v)
	}

	var info models.AdminInfo
	if err := a.deps.API.Patch(ctx, "/admin", map[string]string{name: text}, &info); err != nil {
		a.deps.Intercept.Handle(err)
		return err
	}

	a.mu.Lock()
	a.info.Settings = info.Settings
	a.mu.Unlock()
	return nil
}

// Fetch loads one page of accounts, filterable by search term.
func (u *AdminUsers) Fetch(ctx context.Context, q nav.ListQuery) error {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	return u.fetchList(ctx, adminUsersPath, q, true)
}

// AdminUserUpdate is the PATCH /admin/users/:id request body.
type AdminUserUpdate struct {
	Role  string `json:"role,omitempty"`
	State string `json:"state,omitempty"`
}

// Update patches an account's role/state and reconciles the cached entry.
// Unlike entity detail updates there is no navigation here; the admin list
// stays on screen.
func (u *AdminUsers) Update(ctx context.Context, id int, fields AdminUserUpdate) error {
	var updated models.AdminUser
	if err := u.deps.API.Patch(ctx, adminUsersPath+"/"+strconv.Itoa(id), fields, &updated); err != nil {
		u.deps.Intercept.Handle(err)
		return err
	}

	u.mu.Lock()
	u.reconcile(updated)
	u.mu.Unlock()
	return nil
}
