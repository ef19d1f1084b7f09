package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/konarr/konarr-go/internal/client/models"
)

// Users covers the self-service account endpoints: whoami, password change
// and session management.
type Users struct {
	deps Deps

	mu               sync.Mutex
	loading          bool
	changingPassword bool
	sessions         []models.Session
}

func NewUsers(deps Deps) *Users {
	return &Users{deps: deps}
}

// Whoami returns the currently authenticated user.
func (u *Users) Whoami(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := u.deps.API.Get(ctx, "/user/whoami", nil, &user); err != nil {
		u.deps.Intercept.Handle(err)
		return nil, err
	}
	return &user, nil
}

type passwordChange struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// ChangePassword updates the account password.
func (u *Users) ChangePassword(ctx context.Context, current, next, confirm string) error {
	u.mu.Lock()
	u.changingPassword = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		u.changingPassword = false
		u.mu.Unlock()
	}()

	body := passwordChange{CurrentPassword: current, NewPassword: next, NewPasswordConfirm: confirm}
	var status models.StatusResponse
	if err := u.deps.API.Patch(ctx, "/user/password", body, &status); err != nil {
		u.deps.Intercept.Handle(err)
		return err
	}
	return nil
}

// ChangingPassword reports whether a password change is in flight.
func (u *Users) ChangingPassword() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.changingPassword
}

// Sessions fetches the active sessions and caches them.
func (u *Users) Sessions(ctx context.Context) ([]models.Session, error) {
	u.mu.Lock()
	u.loading = true
	u.mu.Unlock()

	var p struct {
		Data []models.Session `json:"data"`
	}
	err := u.deps.API.Get(ctx, "/user/sessions", nil, &p)

	u.mu.Lock()
	u.loading = false
	if err == nil {
		u.sessions = p.Data
	}
	sessions := make([]models.Session, len(u.sessions))
	copy(sessions, u.sessions)
	u.mu.Unlock()

	if err != nil {
		u.deps.Intercept.Handle(err)
		return nil, err
	}
	return sessions, nil
}

// CachedSessions returns the last fetched session list.
func (u *Users) CachedSessions() []models.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]models.Session, len(u.sessions))
	copy(out, u.sessions)
	return out
}

// RevokeSession revokes one session and refreshes the list on success.
func (u *Users) RevokeSession(ctx context.Context, id int) error {
	if err := u.deps.API.Delete(ctx, fmt.Sprintf("/user/sessions/%d", id), nil); err != nil {
		u.deps.Intercept.Handle(err)
		return err
	}

	_, err := u.Sessions(ctx)
	return err
}
