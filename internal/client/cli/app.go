package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/konarr/konarr-go/internal/client/api"
	"github.com/konarr/konarr-go/internal/client/config"
	"github.com/konarr/konarr-go/internal/client/nav"
	"github.com/konarr/konarr-go/internal/client/notify"
	"github.com/konarr/konarr-go/internal/client/stores"
	"github.com/konarr/konarr-go/internal/logging"
)

// pager is satisfied by every paginated collection store.
type pager interface {
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
}

// App wires the stores behind the interactive Konarr CLI.
type App struct {
	config    *config.Config
	log       logging.Logger
	navigator *nav.Memory

	server       *stores.Server
	projects     *stores.Projects
	dependencies *stores.Dependencies
	security     *stores.Security
	snapshots    *stores.Snapshots
	admin        *stores.Admin
	users        *stores.Users

	reader *bufio.Reader

	// active is the collection the next/prev commands page through,
	// set by the most recent list command.
	active     pager
	showActive func()
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)
	notifier := notify.NewConsole(os.Stdout, logger)
	navigator := nav.NewMemory()

	apiClient, err := api.New(c.ServerURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	deps := stores.Deps{
		API:       apiClient,
		Intercept: api.NewInterceptor(navigator, notifier, logger),
		Nav:       navigator,
		Notify:    notifier,
		Log:       logger,
	}

	return &App{
		config:       c,
		log:          logger,
		navigator:    navigator,
		server:       stores.NewServer(deps),
		projects:     stores.NewProjects(deps),
		dependencies: stores.NewDependencies(deps),
		security:     stores.NewSecurity(deps),
		snapshots:    stores.NewSnapshots(deps),
		admin:        stores.NewAdmin(deps),
		users:        stores.NewUsers(deps),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run fetches the server info (which may redirect to login or registration)
// and hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Konarr CLI (type 'help' for commands)")

	_ = a.server.FetchInfo(ctx)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.server.LoggedIn()
}

func (a *App) status() string {
	s := ""
	if info := a.server.Info(); info.User != nil {
		s = info.User.Username
	}
	if name := a.navigator.Current().Name; name != "" {
		if s != "" {
			s += " "
		}
		s += name
	}
	if s != "" {
		s = "(" + s + ") "
	}
	return s
}

func (a *App) setPager(p pager, show func()) {
	a.active = p
	a.showActive = show
}

// NextPage advances the most recently listed collection and re-renders it.
func (a *App) NextPage(ctx context.Context) error {
	if a.active == nil {
		printlnFn("Nothing to page, list something first.")
		return nil
	}
	if err := a.active.NextPage(ctx); err != nil {
		return err
	}
	a.showActive()
	return nil
}

// PrevPage goes back one page in the most recently listed collection.
func (a *App) PrevPage(ctx context.Context) error {
	if a.active == nil {
		printlnFn("Nothing to page, list something first.")
		return nil
	}
	if err := a.active.PrevPage(ctx); err != nil {
		return err
	}
	a.showActive()
	return nil
}
