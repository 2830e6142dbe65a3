// Package object defines the content-addressed blob backend: payloads
// stored and retrieved solely by an allocated Ref, independent of
// filename.
package object

import (
	"context"
	"io"

	"go-hiring-backend/internal/domain"
)

// Store is the contract both physical implementations (Postgres bytea
// and S3-compatible object storage) satisfy.
type Store interface {
	// Put stores the payload under info.Ref.
	Put(ctx context.Context, info domain.BlobInfo, r io.Reader) error
	// Get retrieves the payload and its metadata, or domain.ErrNotFound
	// if nothing is stored under ref.
	Get(ctx context.Context, ref domain.Ref) (io.ReadCloser, *domain.BlobInfo, error)
}
