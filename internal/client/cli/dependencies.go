package cli

import (
	"context"
	"strconv"

	"github.com/konarr/konarr-go/internal/client/nav"
)

// Dependencies lists one page of dependencies. An optional numeric argument
// scopes the list to a snapshot.
func (a *App) Dependencies(ctx context.Context, args []string) error {
	q := nav.ListQuery{Limit: a.config.PageLimit}
	if len(args) > 0 {
		if id, err := strconv.Atoi(args[0]); err == nil && id > 0 {
			q.Snapshot = id
		}
	}

	if err := a.dependencies.Fetch(ctx, q); err != nil {
		return err
	}
	a.showDependencies()
	a.setPager(a.dependencies, a.showDependencies)
	return nil
}

func (a *App) showDependencies() {
	v := a.dependencies.View()
	for _, d := range v.Data {
		printlnFn("#"+strconv.Itoa(d.ID), depLabel(d))
	}
	pageFooter(v)
}

// Dependency shows a single dependency, served from the cache when possible.
func (a *App) Dependency(ctx context.Context, args []string) error {
	id, ok := parseID(args, "dep <id>")
	if !ok {
		return nil
	}
	if err := a.dependencies.GetOrFetch(ctx, id); err != nil {
		return err
	}

	v := a.dependencies.View()
	for _, d := range v.Data {
		if d.ID != v.Current {
			continue
		}
		printlnFn(depLabel(d))
		if d.Type != "" {
			printlnFn("type:", d.Type)
		}
		if d.Manager != "" {
			printlnFn("manager:", d.Manager)
		}
	}
	return nil
}
