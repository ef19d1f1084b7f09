package cli

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/konarr/konarr-go/internal/client/stores"
	"github.com/konarr/konarr-go/internal/filex"
)

// detectFile is a test seam for mimetype.DetectFile.
var detectFile = mimetype.DetectFile

// sniffContentType detects the MIME type of the file on disk, with any
// parameters (charset) stripped so the value matches the upload allow-list.
// An undetectable file yields an empty string; the extension check still
// applies server-side validation then.
func sniffContentType(path string) string {
	mtype, err := detectFile(path)
	if err != nil {
		return ""
	}
	ct, _, _ := strings.Cut(mtype.String(), ";")
	return strings.TrimSpace(ct)
}

// Upload sends an SBOM file into a project snapshot:
//
//	upload <project-id> <file>
//
// The file is validated before any request is made; validation problems are
// printed directly instead of going through the notification pipeline.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: upload <project-id> <file>")
		return nil
	}
	projectID, err := strconv.Atoi(args[0])
	if err != nil || projectID <= 0 {
		printlnFn("Usage: upload <project-id> <file>")
		return nil
	}
	path := args[1]

	f, size, err := filex.OpenWithSize(path)
	if err != nil {
		printlnFn("Cannot open file:", err.Error())
		return err
	}
	defer f.Close()

	snap, err := a.snapshots.UploadSBOM(ctx, projectID, stores.UploadFile{
		Name:        filepath.Base(path),
		Size:        size,
		ContentType: sniffContentType(path),
		Content:     f,
	})
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	printlnFn(snapshotLine(*snap))
	return nil
}

// Snapshot fetches and prints a snapshot's status and metadata.
func (a *App) Snapshot(ctx context.Context, args []string) error {
	id, ok := parseID(args, "snapshot <id>")
	if !ok {
		return nil
	}
	snap, err := a.snapshots.Get(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(snapshotLine(*snap))
	return nil
}
