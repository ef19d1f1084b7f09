package stores

import (
	"context"
	"fmt"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
)

const securityPath = "/security"

// Security is the store for vulnerability alerts, instance-wide or scoped to
// one snapshot.
type Security struct {
	*Collection[models.SecurityAlert]
}

func NewSecurity(deps Deps) *Security {
	return &Security{newCollection[models.SecurityAlert](deps, collectionConfig{
		path:        securityPath,
		detailRoute: nav.RouteAlert,
		listRoute:   nav.RouteSecurity,
	})}
}

// Fetch loads one page of alerts, filterable by severity. A non-zero
// q.Snapshot scopes the collection to that snapshot's alerts.
func (s *Security) Fetch(ctx context.Context, q nav.ListQuery) error {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	path := securityPath
	mirror := true
	if q.Snapshot > 0 {
		path = fmt.Sprintf("/snapshots/%d/alerts", q.Snapshot)
		mirror = false
	}
	return s.fetchList(ctx, path, q, mirror)
}

// Get fetches a single alert into the cache and selects it.
func (s *Security) Get(ctx context.Context, id int) error {
	return s.fetchOne(ctx, securityPath, id, nil)
}

// GetOrFetch selects the alert from the cache, hitting the network only on a
// cache miss.
func (s *Security) GetOrFetch(ctx context.Context, id int) error {
	return s.getOrFetch(ctx, securityPath, id)
}
