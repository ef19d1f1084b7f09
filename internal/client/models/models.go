// Package models defines the entity types returned by the Konarr API.
//
// Every collection entity carries a server-assigned integer id, unique within
// its type and immutable after creation. Collection caches key on this id.
package models

// Entity is implemented by every type that lives in a paginated collection.
type Entity interface {
	EntityID() int
}

// Project is a tracked container, server or grouping of either.
type Project struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	Status      bool              `json:"status"`
	Snapshot    *Snapshot         `json:"snapshot,omitempty"`
	Security    *SecuritySummary  `json:"security,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedAt   string            `json:"created_at"`
	Parent      int               `json:"parent,omitempty"`
	Children    []Project         `json:"children,omitempty"`
}

func (p Project) EntityID() int { return p.ID }

// Dependency is a single package discovered in a snapshot's manifest.
type Dependency struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Manager   string `json:"manager"`
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
	Version   string `json:"version,omitempty"`
	Purl      string `json:"purl,omitempty"`
	Logo      string `json:"logo,omitempty"`
}

func (d Dependency) EntityID() int { return d.ID }

// SecurityAlert is a vulnerability finding against a dependency.
type SecurityAlert struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Severity    string      `json:"severity"`
	Description string      `json:"description,omitempty"`
	Advisory    string      `json:"advisory,omitempty"`
	Dependency  *Dependency `json:"dependency,omitempty"`
	// Affected version range as reported by the advisory source.
	Introduced string `json:"introduced,omitempty"`
	Fixed      string `json:"fixed,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func (a SecurityAlert) EntityID() int { return a.ID }

// Severity levels as reported by the server.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Snapshot states. A Failed snapshot may be reused by a later upload attempt.
const (
	SnapshotPending    = "Pending"
	SnapshotProcessing = "Processing"
	SnapshotComplete   = "Complete"
	SnapshotFailed     = "Failed"
)

// Snapshot is one point-in-time ingestion of a project's dependency manifest.
type Snapshot struct {
	ID           int              `json:"id"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"created_at"`
	Dependencies int              `json:"dependencies"`
	Security     SecuritySummary  `json:"security"`
	Metadata     SnapshotMetadata `json:"metadata"`
}

func (s Snapshot) EntityID() int { return s.ID }

type SnapshotMetadata struct {
	Tool             string `json:"tool,omitempty"`
	ToolVersion      string `json:"tool_version,omitempty"`
	BOM              string `json:"bom,omitempty"`
	BOMVersion       string `json:"bom_version,omitempty"`
	ContainerImage   string `json:"container_image,omitempty"`
	ContainerVersion string `json:"container_version,omitempty"`
}

// SecuritySummary is the per-severity alert histogram used in rollups.
type SecuritySummary struct {
	Advisories int `json:"advisories,omitempty"`
	Total      int `json:"total"`
	Critical   int `json:"critical"`
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Low        int `json:"low"`
	Other      int `json:"other"`
}

// User is the authenticated user as seen by non-admin endpoints.
type User struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role"`
}

// AdminUser is the user-management view of an account.
type AdminUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	State     string `json:"state"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func (u AdminUser) EntityID() int { return u.ID }

// Session is an authenticated browser/CLI session held by the server.
type Session struct {
	ID           int    `json:"id"`
	Token        string `json:"token,omitempty"`
	CreatedAt    string `json:"created_at"`
	LastAccessed string `json:"last_accessed,omitempty"`
	State        string `json:"state,omitempty"`
}

func (s Session) EntityID() int { return s.ID }

// ServerConfig holds the server's registration/initialization flags.
type ServerConfig struct {
	Initialised  bool `json:"initialised"`
	Registration bool `json:"registration"`
}

// ServerInfo is the process-wide singleton returned by GET /.
// It is always replaced whole, never partially merged.
type ServerInfo struct {
	Version      string                `json:"version"`
	Commit       string                `json:"commit"`
	Config       ServerConfig          `json:"config"`
	User         *User                 `json:"user,omitempty"`
	Projects     *ProjectsSummary      `json:"projects,omitempty"`
	Dependencies *DependenciesSummary  `json:"dependencies,omitempty"`
	Security     *SecuritySummary      `json:"security,omitempty"`
}

type ProjectsSummary struct {
	Total      int `json:"total"`
	Containers int `json:"containers"`
	Servers    int `json:"servers"`
}

type DependenciesSummary struct {
	Total int `json:"total"`
}

// AdminInfo is the GET /admin payload: instance settings plus rollup stats.
type AdminInfo struct {
	Settings     map[string]string `json:"settings"`
	ProjectStats AdminProjectStats `json:"projectStats"`
	Users        []AdminUser       `json:"users"`
	UserStats    AdminUserStats    `json:"userStats"`
}

type AdminProjectStats struct {
	Total    int `json:"total"`
	Inactive int `json:"inactive"`
	Archived int `json:"archived"`
}

type AdminUserStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// StatusResponse is the generic acknowledgement payload of the auth endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusSuccess is the value the server sets on successful auth operations.
const StatusSuccess = "success"
