package stores

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
)

const dependenciesPath = "/dependencies"

// Dependencies is the store for the dependency inventory, either instance-wide
// or scoped to one snapshot.
type Dependencies struct {
	*Collection[models.Dependency]
}

func NewDependencies(deps Deps) *Dependencies {
	return &Dependencies{newCollection[models.Dependency](deps, collectionConfig{
		path:        dependenciesPath,
		detailRoute: nav.RouteDependency,
		listRoute:   nav.RouteDependencies,
	})}
}

func snapshotDependenciesPath(snapshot int) string {
	return fmt.Sprintf("/snapshots/%d/dependencies", snapshot)
}

// Fetch loads one page of dependencies. A non-zero q.Snapshot scopes the
// collection to that snapshot; only the unscoped view mirrors its filters
// into the URL query.
func (s *Dependencies) Fetch(ctx context.Context, q nav.ListQuery) error {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	path := dependenciesPath
	mirror := true
	if q.Snapshot > 0 {
		path = snapshotDependenciesPath(q.Snapshot)
		mirror = false
	}
	return s.fetchList(ctx, path, q, mirror)
}

// Search runs a server-side full-text filter, scoped when snapshot is
// non-zero.
func (s *Dependencies) Search(ctx context.Context, term string, snapshot int) error {
	path := dependenciesPath
	if snapshot > 0 {
		path = snapshotDependenciesPath(snapshot)
	}
	return s.search(ctx, path, term)
}

// Get fetches a single dependency, optionally pinned to a snapshot's version.
func (s *Dependencies) Get(ctx context.Context, id, snapshot int) error {
	var extra url.Values
	if snapshot > 0 {
		extra = url.Values{"snapshot": {strconv.Itoa(snapshot)}}
	}
	return s.fetchOne(ctx, dependenciesPath, id, extra)
}

// GetOrFetch selects the dependency from the cache, hitting the network only
// on a cache miss.
func (s *Dependencies) GetOrFetch(ctx context.Context, id int) error {
	return s.getOrFetch(ctx, dependenciesPath, id)
}
