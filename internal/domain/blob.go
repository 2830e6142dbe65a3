package domain

import (
	"context"
	"io"
	"time"
)

// Staged upload folders. The folder name is baked into persisted path
// references, so these values cannot change.
const (
	StagedFolderDefault   = "default"
	StagedFolderDashboard = "user-dashboard"
)

// KnownStagedFolder reports whether name is one of the staging areas.
func KnownStagedFolder(name string) bool {
	return name == StagedFolderDefault || name == StagedFolderDashboard
}

// BlobInfo describes a content-addressed blob. The payload itself lives
// in the object store behind Ref.
type BlobInfo struct {
	Ref         Ref       `json:"ref"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// BlobUsecase is the single ingest/retrieval surface over both physical
// backends. Reference strings handed out here are what profiles and
// applications persist.
type BlobUsecase interface {
	// UploadStaged writes to the path-addressed staging area and returns
	// a "<folder>/<unixMillis>-<filename>" path reference.
	UploadStaged(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	// UploadAddressed writes to the content-addressed store under a
	// freshly allocated Ref.
	UploadAddressed(ctx context.Context, filename string, r io.Reader) (*BlobInfo, error)
	// Download retrieves a content-addressed blob by its reference string.
	Download(ctx context.Context, ref string) (io.ReadCloser, *BlobInfo, error)
	// Resolve maps any reference shape the data set has accumulated
	// (addressed ref, staged path, bare legacy filename) to a
	// retrievable location.
	Resolve(ctx context.Context, reference string) (string, error)
}
