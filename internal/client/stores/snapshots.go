package stores

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/common"
)

// MaxSBOMSize is the upload ceiling for dependency manifests.
const MaxSBOMSize = 5 << 20 // 5 MB

var (
	allowedSBOMTypes = []string{
		"application/json",
		"application/xml",
		"text/xml",
		"text/json",
	}
	allowedSBOMExts = []string{".json", ".xml"}
)

// UploadFile describes a manifest file handed to the upload workflow. The
// content type is whatever the caller declared (from sniffing or a browser
// File); it may be empty.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// Snapshots tracks one snapshot through the upload workflow:
// create → upload → Processing → Complete/Failed. A tracked Failed snapshot
// is reused by the next upload attempt instead of creating an orphan record.
//
// Unlike the other stores, failed operations are re-raised to the caller
// after interceptor routing: the call site owns form-level error display.
type Snapshots struct {
	deps Deps

	mu       sync.Mutex
	loading  bool
	snapshot *models.Snapshot
}

func NewSnapshots(deps Deps) *Snapshots {
	return &Snapshots{deps: deps}
}

// Current returns a copy of the tracked snapshot, or nil.
func (s *Snapshots) Current() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	snap := *s.snapshot
	return &snap
}

// Loading reports whether a snapshot operation is in flight.
func (s *Snapshots) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Snapshots) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Snapshots) track(snap models.Snapshot) {
	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()
}

// Get fetches a snapshot by id and tracks it.
func (s *Snapshots) Get(ctx context.Context, id int) (*models.Snapshot, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	var snap models.Snapshot
	if err := s.deps.API.Get(ctx, fmt.Sprintf("/snapshots/%d", id), nil, &snap); err != nil {
		s.deps.Intercept.Handle(err)
		return nil, err
	}
	s.track(snap)
	return &snap, nil
}

type snapshotCreate struct {
	ProjectID int `json:"project_id"`
}

// Create registers a new snapshot record for the project and tracks it.
func (s *Snapshots) Create(ctx context.Context, projectID int) (*models.Snapshot, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	var snap models.Snapshot
	if err := s.deps.API.Post(ctx, "/snapshots", snapshotCreate{ProjectID: projectID}, &snap); err != nil {
		s.deps.Intercept.Handle(err)
		return nil, err
	}
	s.track(snap)
	return &snap, nil
}

// UploadSBOM validates the manifest file and streams it to the server.
//
// Validation happens before any network call: the size ceiling, then the
// content-type/extension allow-list (either passing is enough). When the
// tracked snapshot is in Failed state its id is reused — retry without
// duplication — otherwise a fresh snapshot is created first. The server's
// returned snapshot replaces the tracked one; it may already be Processing,
// Complete or Failed depending on how the server schedules ingestion.
func (s *Snapshots) UploadSBOM(ctx context.Context, projectID int, file UploadFile) (*models.Snapshot, error) {
	if err := validateSBOM(file); err != nil {
		return nil, err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	snapshotID := 0
	if snap := s.Current(); snap != nil && snap.Status == models.SnapshotFailed {
		snapshotID = snap.ID
	} else {
		snap, err := s.Create(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("snapshot creation failed: %w", err)
		}
		snapshotID = snap.ID
	}

	var snap models.Snapshot
	err := s.deps.API.Upload(ctx, fmt.Sprintf("/snapshots/%d/bom", snapshotID),
		file.ContentType, file.Content, &snap)
	if err != nil {
		s.deps.Intercept.Handle(err)
		return nil, err
	}
	s.track(snap)
	return &snap, nil
}

// validateSBOM applies the client-side file checks. Errors here are raised to
// the caller without a notification; no request has been issued yet.
func validateSBOM(file UploadFile) error {
	if file.Size > MaxSBOMSize {
		return common.ErrFileTooLarge
	}

	typeOK := false
	for _, t := range allowedSBOMTypes {
		if file.ContentType == t {
			typeOK = true
			break
		}
	}
	extOK := false
	name := strings.ToLower(file.Name)
	for _, ext := range allowedSBOMExts {
		if strings.HasSuffix(name, ext) {
			extOK = true
			break
		}
	}
	if !typeOK && !extOK {
		return common.ErrInvalidFileType
	}
	return nil
}
