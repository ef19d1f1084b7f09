// Package nav models the client's navigation state: the current route, the
// highlighted top-level menu entry, and the query-string round-trip that makes
// filtered collection views shareable.
//
// The data layer never reads routes on its own; callers pass filters in
// explicitly and stores push query updates through the Navigator interface.
package nav

import (
	"net/url"
	"strings"
	"sync"
)

// Route names used across the client. They mirror the web UI's route table.
const (
	RouteHome         = "Home"
	RouteLogin        = "Login"
	RouteRegister     = "Register"
	RouteProjects     = "Projects"
	RouteProject      = "Project"
	RouteDependencies = "Dependencies"
	RouteDependency   = "Dependency"
	RouteSecurity     = "Security"
	RouteAlert        = "Alert"
	RouteAdmin        = "Admin"
	RouteAdminUsers   = "Admin Users"
)

// Route is a named location plus its parameters and query string.
type Route struct {
	Name   string
	Path   string
	Params map[string]string
	Query  url.Values
}

// Navigator tracks the current route. Push replaces the current route; the
// memory implementation also recomputes the navigation highlight on each push.
type Navigator interface {
	Current() Route
	Push(r Route)
}

// Top-level navigation entries.
const (
	EntryHome         = "Home"
	EntryProjects     = "Projects"
	EntryDependencies = "Dependencies"
	EntrySecurity     = "Security"
)

// Item is one top-level navigation entry with its highlight flag.
type Item struct {
	Name    string
	Current bool
}

// ActiveEntry derives which navigation entry a route name activates.
// Prefix rules: any "Project..." (or "... Project") route belongs to Projects,
// "Alert" and "Security..." to Security, "Dependenc..." to Dependencies.
func ActiveEntry(name string) string {
	switch {
	case strings.HasPrefix(name, "Project"), strings.HasSuffix(name, "Project"):
		return EntryProjects
	case name == RouteAlert, strings.HasPrefix(name, "Security"):
		return EntrySecurity
	case strings.HasPrefix(name, "Dependen"):
		return EntryDependencies
	case name == RouteHome:
		return EntryHome
	default:
		return ""
	}
}

// Memory is an in-process Navigator for the CLI and for tests.
type Memory struct {
	mu      sync.Mutex
	current Route
	history []Route
	items   []Item
}

func NewMemory() *Memory {
	m := &Memory{
		items: []Item{
			{Name: EntryHome},
			{Name: EntryProjects},
			{Name: EntryDependencies},
			{Name: EntrySecurity},
		},
	}
	m.Push(Route{Name: RouteHome, Path: "/"})
	return m
}

func (m *Memory) Current() Route {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Push makes r the current route and recomputes the navigation highlight.
func (m *Memory) Push(r Route) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = r
	m.history = append(m.history, r)
	active := ActiveEntry(r.Name)
	for i := range m.items {
		m.items[i].Current = m.items[i].Name == active
	}
}

// Items returns a copy of the navigation entries with their highlight state.
func (m *Memory) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// History returns every route pushed so far, oldest first.
func (m *Memory) History() []Route {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Route, len(m.history))
	copy(out, m.history)
	return out
}
