package stores

import (
	"context"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
)

const projectsPath = "/projects"

// Projects is the store for the project inventory.
type Projects struct {
	*Collection[models.Project]
}

func NewProjects(deps Deps) *Projects {
	return &Projects{newCollection[models.Project](deps, collectionConfig{
		path:        projectsPath,
		detailRoute: nav.RouteProject,
		listRoute:   nav.RouteProjects,
	})}
}

// ProjectCreate is the POST /projects request body.
type ProjectCreate struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Parent      int    `json:"parent,omitempty"`
}

// ProjectUpdate is the PATCH /projects/:id request body. Empty fields are
// left untouched by the server.
type ProjectUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Parent      int    `json:"parent,omitempty"`
	Status      *bool  `json:"status,omitempty"`
}

// Fetch loads one page of projects. Callers wanting the overview behavior of
// the web UI pass q.Top to hide child containers.
func (s *Projects) Fetch(ctx context.Context, q nav.ListQuery) error {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	return s.fetchList(ctx, projectsPath, q, true)
}

// Search runs a server-side full-text filter over projects.
func (s *Projects) Search(ctx context.Context, term string) error {
	return s.search(ctx, projectsPath, term)
}

// Get fetches a single project into the cache and selects it.
func (s *Projects) Get(ctx context.Context, id int) error {
	return s.fetchOne(ctx, projectsPath, id, nil)
}

// GetOrFetch selects the project from the cache, hitting the network only on
// a cache miss.
func (s *Projects) GetOrFetch(ctx context.Context, id int) error {
	return s.getOrFetch(ctx, projectsPath, id)
}

// Create registers a new project and navigates to its detail view.
func (s *Projects) Create(ctx context.Context, fields ProjectCreate) error {
	return s.create(ctx, projectsPath, fields)
}

// Update patches a project and navigates to its detail view.
func (s *Projects) Update(ctx context.Context, id int, fields ProjectUpdate) error {
	return s.update(ctx, projectsPath, id, fields)
}

// Delete removes a project. The cache entry goes only after the server
// confirms; either way the navigator returns to the project list.
func (s *Projects) Delete(ctx context.Context, id int) error {
	return s.remove(ctx, projectsPath, id)
}

// Parents returns the projects eligible to act as a parent (servers and
// groups). The result is not merged into the pagination cache.
func (s *Projects) Parents(ctx context.Context) ([]models.Project, error) {
	q := nav.ListQuery{ParentsOnly: true}
	var p page[models.Project]
	if err := s.deps.API.Get(ctx, projectsPath, q.Values(), &p); err != nil {
		s.deps.Intercept.Handle(err)
		return nil, err
	}
	return p.items(), nil
}
