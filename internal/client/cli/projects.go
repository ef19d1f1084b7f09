package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/konarr/konarr-go/internal/client/nav"
	"github.com/konarr/konarr-go/internal/client/stores"
)

// parseID reads a positive integer id from the first argument. On failure it
// prints the usage line and reports false.
func parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		printlnFn("Usage:", usage)
		return 0, false
	}
	return id, true
}

// Projects lists one page of projects. An optional numeric argument picks the
// page (1-based); the argument "top" hides projects nested under a parent.
func (a *App) Projects(ctx context.Context, args []string) error {
	q := nav.ListQuery{Limit: a.config.PageLimit}
	for _, arg := range args {
		if arg == "top" {
			q.Top = true
			continue
		}
		if n, err := strconv.Atoi(arg); err == nil && n > 0 {
			q.Page = n - 1
		}
	}

	if err := a.projects.Fetch(ctx, q); err != nil {
		return err
	}
	a.showProjects()
	a.setPager(a.projects, a.showProjects)
	return nil
}

func (a *App) showProjects() {
	v := a.projects.View()
	for _, p := range v.Data {
		printlnFn(projectLine(p))
	}
	pageFooter(v)
}

// Project shows a single project, served from the cache when possible.
func (a *App) Project(ctx context.Context, args []string) error {
	id, ok := parseID(args, "project <id>")
	if !ok {
		return nil
	}
	if err := a.projects.GetOrFetch(ctx, id); err != nil {
		return err
	}

	v := a.projects.View()
	for _, p := range v.Data {
		if p.ID != v.Current {
			continue
		}
		printlnFn(projectLine(p))
		if p.Description != "" {
			printlnFn(p.Description)
		}
		if p.Snapshot != nil {
			printlnFn(snapshotLine(*p.Snapshot))
		}
		for _, child := range p.Children {
			printlnFn("  " + projectLine(child))
		}
	}
	return nil
}

// CreateProject prompts for the project fields and registers it.
func (a *App) CreateProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter project name", os.Stdout)
	if err != nil {
		return err
	}
	ptype, err := getSimpleText(a.reader, "Enter project type (container, server, group)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description (optional):", os.Stdout)
	if err != nil {
		return err
	}

	fields := stores.ProjectCreate{Name: name, Type: ptype, Description: description}

	if parents, err := a.projects.Parents(ctx); err == nil && len(parents) > 0 {
		printlnFn("Available parents:")
		for _, p := range parents {
			printlnFn("  " + projectLine(p))
		}
		answer, err := getSimpleText(a.reader, "Enter parent id (empty for none)", os.Stdout)
		if err != nil {
			return err
		}
		if id, err := strconv.Atoi(answer); err == nil && id > 0 {
			fields.Parent = id
		}
	}

	return a.projects.Create(ctx, fields)
}

// EditProject prompts for new field values and patches the project. Empty
// answers leave the server-side value untouched.
func (a *App) EditProject(ctx context.Context, args []string) error {
	id, ok := parseID(args, "editproject <id>")
	if !ok {
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter new title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter new description (empty to keep):", os.Stdout)
	if err != nil {
		return err
	}

	return a.projects.Update(ctx, id, stores.ProjectUpdate{Title: title, Description: description})
}

// DeleteProject removes a project after an explicit confirmation.
func (a *App) DeleteProject(ctx context.Context, args []string) error {
	id, ok := parseID(args, "delproject <id>")
	if !ok {
		return nil
	}

	answer, err := getSimpleText(a.reader, "Type 'yes' to delete the project", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted.")
		return nil
	}
	if err := a.projects.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Project deleted.")
	return nil
}

// SearchProjects runs a server-side full-text search over projects.
func (a *App) SearchProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: search <term>")
		return nil
	}
	if err := a.projects.Search(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	a.showProjects()
	return nil
}
