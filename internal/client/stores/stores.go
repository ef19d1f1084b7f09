// Package stores holds the client-side data-synchronization layer: one state
// container per entity family, all backed by a single generic paginated
// collection. Stores own their caches, route every failure through the
// error/auth interceptor, and never let errors escape as panics; the snapshot
// upload workflow is the only one that surfaces validation errors to its
// caller directly.
package stores

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/konarr/konarr-go/internal/client/api"
	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
	"github.com/konarr/konarr-go/internal/client/notify"
	"github.com/konarr/konarr-go/internal/logging"
)

// DefaultLimit is the page size used when a caller does not pick one.
const DefaultLimit = 24

// Deps bundles the collaborators shared by every store.
type Deps struct {
	API       *api.Client
	Intercept *api.Interceptor
	Nav       nav.Navigator
	Notify    notify.Notifier
	Log       logging.Logger
}

// page is the server's paginated payload. The admin user list returns its
// items under "users" instead of "data"; both keys are accepted.
type page[T models.Entity] struct {
	Data  []T `json:"data"`
	Users []T `json:"users"`
	Total int `json:"total"`
	Count int `json:"count"`
	Pages int `json:"pages"`
}

func (p page[T]) items() []T {
	if p.Data == nil && p.Users != nil {
		return p.Users
	}
	return p.Data
}

// View is a read-only copy of a collection's state.
type View[T models.Entity] struct {
	Data    []T
	Total   int
	Count   int
	Pages   int
	Page    int
	Limit   int
	Current int
	Loading bool
}

// collectionConfig fixes the endpoint and navigation targets of a collection.
type collectionConfig struct {
	// path is the API collection path, e.g. "/projects".
	path string
	// detailRoute/listRoute name where to navigate after create/update and
	// delete. Empty means no navigation.
	detailRoute string
	listRoute   string
}

// Collection is the generic paginated remote resource: an ordered cache of
// entities in server order, pagination metadata, and a current-selection
// pointer. Entities are reconciled by id (replace if present, else append) so
// overlapping endpoints never produce duplicates.
//
// Overlapping fetches are serialized by a request sequence: each fetch takes
// a token and a response is applied only while its token is still the newest,
// so a slow stale response can no longer overwrite a fresher page.
type Collection[T models.Entity] struct {
	deps Deps
	cfg  collectionConfig

	mu      sync.Mutex
	data    []T
	total   int
	count   int
	pages   int
	page    int
	limit   int
	current int
	loading bool
	seq     uint64

	last struct {
		path   string
		query  nav.ListQuery
		mirror bool
	}
}

func newCollection[T models.Entity](deps Deps, cfg collectionConfig) *Collection[T] {
	return &Collection[T]{deps: deps, cfg: cfg}
}

// View returns a copy of the collection state safe for rendering.
func (c *Collection[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	data := make([]T, len(c.data))
	copy(data, c.data)
	return View[T]{
		Data:    data,
		Total:   c.total,
		Count:   c.count,
		Pages:   c.pages,
		Page:    c.page,
		Limit:   c.limit,
		Current: c.current,
		Loading: c.loading,
	}
}

// begin marks a fetch in flight and hands out its sequence token.
func (c *Collection[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.loading = true
	return c.seq
}

// fetchList loads one page into the cache. On failure the previous data stays
// intact and the interceptor runs; on success the page replaces the cache and,
// for mirrored (unscoped) collections, the navigator's query string is updated
// to match so the view is shareable.
func (c *Collection[T]) fetchList(ctx context.Context, path string, q nav.ListQuery, mirror bool) error {
	token := c.begin()

	var p page[T]
	err := c.deps.API.Get(ctx, path, q.Values(), &p)

	applied := false
	c.mu.Lock()
	if token == c.seq {
		c.loading = false
		if err == nil {
			c.data = p.items()
			c.total = p.Total
			c.count = p.Count
			c.pages = p.Pages
			c.page = q.Page
			c.limit = q.Limit
			c.current = 0
			c.last.path = path
			c.last.query = q
			c.last.mirror = mirror
			applied = true
		}
	}
	c.mu.Unlock()

	if err != nil {
		c.deps.Intercept.Handle(err)
		return err
	}
	if applied && mirror {
		c.mirrorQuery(q)
	}
	return nil
}

// search replaces the cached data with a server-side full-text result. The
// page/pages bookkeeping of the last page fetch is left alone.
func (c *Collection[T]) search(ctx context.Context, path, term string) error {
	token := c.begin()

	q := nav.ListQuery{Search: term, Limit: DefaultLimit}
	var p page[T]
	err := c.deps.API.Get(ctx, path, q.Values(), &p)

	c.mu.Lock()
	if token == c.seq {
		c.loading = false
		if err == nil {
			c.data = p.items()
			c.total = p.Total
			c.count = p.Count
		}
	}
	c.mu.Unlock()

	if err != nil {
		c.deps.Intercept.Handle(err)
		return err
	}
	return nil
}

// fetchOne loads a single entity and reconciles it into the cache by id.
func (c *Collection[T]) fetchOne(ctx context.Context, path string, id int, extra url.Values) error {
	token := c.begin()

	var item T
	err := c.deps.API.Get(ctx, fmt.Sprintf("%s/%d", path, id), extra, &item)

	c.mu.Lock()
	if token == c.seq {
		c.loading = false
	}
	if err == nil {
		c.reconcile(item)
		c.current = id
	}
	c.mu.Unlock()

	if err != nil {
		c.deps.Intercept.Handle(err)
		return err
	}
	return nil
}

// getOrFetch resolves id from the cache without a network call when possible.
func (c *Collection[T]) getOrFetch(ctx context.Context, path string, id int) error {
	c.mu.Lock()
	for _, item := range c.data {
		if item.EntityID() == id {
			c.current = id
			c.mu.Unlock()
			return nil
		}
	}
	c.mu.Unlock()
	return c.fetchOne(ctx, path, id, nil)
}

// create POSTs a new entity, appends it to the cache and navigates to its
// detail view.
func (c *Collection[T]) create(ctx context.Context, path string, body any) error {
	var created T
	if err := c.deps.API.Post(ctx, path, body, &created); err != nil {
		c.deps.Intercept.Handle(err)
		return err
	}

	c.mu.Lock()
	c.reconcile(created)
	c.current = created.EntityID()
	c.mu.Unlock()

	c.pushDetail(created.EntityID())
	return nil
}

// update PATCHes an entity by id, replaces the cached entry and navigates to
// its detail view. An entity missing from the cache is appended, never
// duplicated.
func (c *Collection[T]) update(ctx context.Context, path string, id int, body any) error {
	var updated T
	if err := c.deps.API.Patch(ctx, fmt.Sprintf("%s/%d", path, id), body, &updated); err != nil {
		c.deps.Intercept.Handle(err)
		return err
	}

	c.mu.Lock()
	c.reconcile(updated)
	c.current = updated.EntityID()
	c.mu.Unlock()

	c.pushDetail(updated.EntityID())
	return nil
}

// remove DELETEs by id. The cache entry goes away only when the server
// confirmed the delete; afterwards the navigator moves to the collection view.
func (c *Collection[T]) remove(ctx context.Context, path string, id int) error {
	if err := c.deps.API.Delete(ctx, fmt.Sprintf("%s/%d", path, id), nil); err != nil {
		c.deps.Intercept.Handle(err)
		return err
	}

	c.mu.Lock()
	kept := c.data[:0]
	for _, item := range c.data {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.data = kept
	if c.current == id {
		c.current = 0
	}
	c.mu.Unlock()

	if c.cfg.listRoute != "" {
		c.deps.Nav.Push(nav.Route{Name: c.cfg.listRoute, Path: c.cfg.path})
	}
	return nil
}

// NextPage fetches the following page using the filters of the last fetch.
func (c *Collection[T]) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.page+1 >= c.pages {
		c.mu.Unlock()
		return nil
	}
	path, q, mirror := c.last.path, c.last.query, c.last.mirror
	q.Page = c.page + 1
	c.mu.Unlock()
	return c.fetchList(ctx, path, q, mirror)
}

// PrevPage fetches the preceding page using the filters of the last fetch.
func (c *Collection[T]) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	if c.page == 0 || c.pages == 0 {
		c.mu.Unlock()
		return nil
	}
	path, q, mirror := c.last.path, c.last.query, c.last.mirror
	q.Page = c.page - 1
	c.mu.Unlock()
	return c.fetchList(ctx, path, q, mirror)
}

// IsFirstPage reports whether the cache holds the first page.
func (c *Collection[T]) IsFirstPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page == 0
}

// IsLastPage reports whether the cache holds the final page.
func (c *Collection[T]) IsLastPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pages == 0 || c.page == c.pages-1
}

// reconcile merges item into the cache by id: replace when present, append
// otherwise. Callers must hold c.mu.
func (c *Collection[T]) reconcile(item T) {
	for i := range c.data {
		if c.data[i].EntityID() == item.EntityID() {
			c.data[i] = item
			return
		}
	}
	c.data = append(c.data, item)
}

func (c *Collection[T]) pushDetail(id int) {
	if c.cfg.detailRoute == "" {
		return
	}
	c.deps.Nav.Push(nav.Route{
		Name:   c.cfg.detailRoute,
		Path:   fmt.Sprintf("%s/%d", c.cfg.path, id),
		Params: map[string]string{"id": strconv.Itoa(id)},
	})
}

// mirrorQuery writes the active page/filters into the current route's query
// string so back/forward navigation and shared links reproduce the view.
func (c *Collection[T]) mirrorQuery(q nav.ListQuery) {
	r := c.deps.Nav.Current()
	r.Query = q.Values()
	c.deps.Nav.Push(r)
}
