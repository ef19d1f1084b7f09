package nav

import (
	"net/url"
	"strconv"
)

// ListQuery is the pagination/filter state of a collection view. It
// round-trips through the URL query string so a shared link reproduces the
// same fetch without manual re-filtering.
type ListQuery struct {
	Page  int
	Limit int

	// Project filters.
	Top         bool
	ParentsOnly bool

	// Shared filters.
	Search string
	Select string

	// Alert filters.
	Severity string

	// Dependency filters.
	DepType string

	// Scope to a snapshot's sub-collection. Zero means unscoped.
	Snapshot int
}

// Values encodes the query for the URL. The first page is omitted so plain
// collection links stay clean.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Top {
		v.Set("top", "true")
	}
	if q.ParentsOnly {
		v.Set("parents", "true")
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Select != "" {
		v.Set("select", q.Select)
	}
	if q.Severity != "" {
		v.Set("severity", q.Severity)
	}
	if q.DepType != "" {
		v.Set("deptype", q.DepType)
	}
	if q.Snapshot > 0 {
		v.Set("snapshot", strconv.Itoa(q.Snapshot))
	}
	return v
}

// ParseListQuery decodes a query string back into a ListQuery. A `select`
// value naming a severity doubles as the severity filter, matching how the
// alert views encode their category links.
func ParseListQuery(v url.Values) ListQuery {
	q := ListQuery{
		Top:         v.Get("top") == "true",
		ParentsOnly: v.Get("parents") == "true",
		Search:      v.Get("search"),
		Select:      v.Get("select"),
		Severity:    v.Get("severity"),
		DepType:     v.Get("deptype"),
	}
	q.Page = atoi(v.Get("page"))
	q.Limit = atoi(v.Get("limit"))
	q.Snapshot = atoi(v.Get("snapshot"))
	if q.Severity == "" && isSeverity(q.Select) {
		q.Severity = q.Select
	}
	return q
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func isSeverity(s string) bool {
	switch s {
	case "critical", "high", "medium", "low", "other":
		return true
	}
	return false
}
