package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/konarr/konarr-go/internal/client/nav"
	"github.com/konarr/konarr-go/internal/client/stores"
)

// Admin prints the instance settings and rollup stats.
func (a *App) Admin(ctx context.Context) error {
	if err := a.admin.FetchInfo(ctx); err != nil {
		return err
	}

	info := a.admin.Info()
	printlnFn("Settings:")
	names := make([]string, 0, len(info.Settings))
	for name := range info.Settings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printlnFn(fmt.Sprintf("  %s = %s", name, info.Settings[name]))
	}
	printlnFn(fmt.Sprintf("Projects: %d total, %d inactive, %d archived",
		info.ProjectStats.Total, info.ProjectStats.Inactive, info.ProjectStats.Archived))
	printlnFn(fmt.Sprintf("Users: %d total, %d active, %d inactive",
		info.UserStats.Total, info.UserStats.Active, info.UserStats.Inactive))
	return nil
}

// AdminUsers lists one page of accounts. An optional numeric argument picks
// the page (1-based).
func (a *App) AdminUsers(ctx context.Context, args []string) error {
	q := nav.ListQuery{Limit: a.config.PageLimit}
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			q.Page = n - 1
		}
	}

	if err := a.admin.Users.Fetch(ctx, q); err != nil {
		return err
	}
	a.showAdminUsers()
	a.setPager(a.admin.Users, a.showAdminUsers)
	return nil
}

func (a *App) showAdminUsers() {
	v := a.admin.Users.View()
	for _, u := range v.Data {
		printlnFn(fmt.Sprintf("#%-4d %-20s %-8s %s", u.ID, u.Username, u.Role, u.State))
	}
	pageFooter(v)
}

// SetSetting updates a single instance setting:
//
//	set <name> <value>
//
// The values "true" and "false" are sent as the server's enabled/disabled
// toggle form.
func (a *App) SetSetting(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: set <name> <value>")
		return nil
	}
	name := args[0]

	var value any = args[1]
	switch args[1] {
	case "true":
		value = true
	case "false":
		value = false
	}

	if err := a.admin.UpdateSetting(ctx, name, value); err != nil {
		return err
	}
	printlnFn("Setting updated.")
	return nil
}

// SetUser patches an account's role or state:
//
//	setuser <id> role <value>
//	setuser <id> state <value>
func (a *App) SetUser(ctx context.Context, args []string) error {
	usage := "setuser <id> role|state <value>"
	if len(args) < 3 {
		printlnFn("Usage:", usage)
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		printlnFn("Usage:", usage)
		return nil
	}

	var fields stores.AdminUserUpdate
	switch args[1] {
	case "role":
		fields.Role = args[2]
	case "state":
		fields.State = args[2]
	default:
		printlnFn("Usage:", usage)
		return nil
	}

	if err := a.admin.Users.Update(ctx, id, fields); err != nil {
		return err
	}
	printlnFn("User updated.")
	return nil
}
