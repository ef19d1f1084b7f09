package stores

import (
	"context"
	"fmt"
	"sync"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
	"github.com/konarr/konarr-go/internal/client/notify"
)

// Server holds the process-wide server/session singleton: version, instance
// configuration, the authenticated user and the rollup summaries. It is
// fetched at start and after every auth flow, and always replaced whole.
type Server struct {
	deps Deps

	mu        sync.Mutex
	info      models.ServerInfo
	loggingIn bool
}

func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Info returns a copy of the current server/session state.
func (s *Server) Info() models.ServerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// LoggingIn reports whether an auth flow is in progress.
func (s *Server) LoggingIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggingIn
}

// LoggedIn reports whether the server sees an authenticated user.
func (s *Server) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info.User != nil
}

// FetchInfo loads GET / and replaces the singleton. When nobody is logged in
// the instance configuration decides where to send the user: an instance
// that has not been initialised (and allows registration) wants the first
// account created; one with registration closed wants a login.
func (s *Server) FetchInfo(ctx context.Context) error {
	var info models.ServerInfo
	if err := s.deps.API.Get(ctx, "/", nil, &info); err != nil {
		s.deps.Intercept.Handle(err)
		return err
	}

	s.mu.Lock()
	s.info = info
	s.mu.Unlock()

	if info.User == nil {
		switch {
		case !info.Config.Initialised && info.Config.Registration:
			s.deps.Nav.Push(nav.Route{Name: nav.RouteRegister, Path: "/register"})
		case !info.Config.Registration:
			s.deps.Nav.Push(nav.Route{Name: nav.RouteLogin, Path: "/login"})
		}
	}
	return nil
}

type credentials struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm,omitempty"`
}

// Login authenticates, refreshes the singleton and navigates home.
func (s *Server) Login(ctx context.Context, username, password string) error {
	s.setLoggingIn(true)
	defer s.setLoggingIn(false)

	var status models.StatusResponse
	err := s.deps.API.Post(ctx, "/auth/login", credentials{Username: username, Password: password}, &status)
	if err != nil {
		s.deps.Intercept.Handle(err)
		return err
	}
	if status.Status != models.StatusSuccess {
		s.deps.Log.Warn(ctx, "login not accepted", "status", status.Status)
		return fmt.Errorf("login failed: %s", status.Status)
	}

	if err := s.FetchInfo(ctx); err != nil {
		return err
	}
	s.deps.Nav.Push(nav.Route{Name: nav.RouteHome, Path: "/"})
	return nil
}

// Logout ends the session, refreshes the singleton and navigates home.
func (s *Server) Logout(ctx context.Context) error {
	var status models.StatusResponse
	err := s.deps.API.Post(ctx, "/auth/logout", struct{}{}, &status)
	if err != nil {
		s.deps.Intercept.Handle(err)
		return err
	}
	if status.Status != models.StatusSuccess {
		s.deps.Log.Warn(ctx, "logout not accepted", "status", status.Status)
	}

	if err := s.FetchInfo(ctx); err != nil {
		return err
	}
	s.deps.Nav.Push(nav.Route{Name: nav.RouteHome, Path: "/"})
	return nil
}

// Register creates an account (the first one on a fresh instance) and sends
// the user to the login view.
func (s *Server) Register(ctx context.Context, username, password, confirm string) error {
	s.setLoggingIn(true)
	defer s.setLoggingIn(false)

	body := credentials{Username: username, Password: password, PasswordConfirm: confirm}
	var status models.StatusResponse
	err := s.deps.API.Post(ctx, "/auth/register", body, &status)
	if err != nil {
		s.deps.Intercept.Handle(err)
		return err
	}
	if status.Status != models.StatusSuccess {
		s.deps.Log.Warn(ctx, "registration not accepted", "status", status.Status)
		return fmt.Errorf("registration failed: %s", status.Status)
	}

	s.deps.Notify.Notify(notify.Notification{
		Type: notify.TypeSuccess,
		Text: "Account created, please log in.",
	})
	s.deps.Nav.Push(nav.Route{Name: nav.RouteLogin, Path: "/login"})
	return nil
}

func (s *Server) setLoggingIn(v bool) {
	s.mu.Lock()
	s.loggingIn = v
	s.mu.Unlock()
}
