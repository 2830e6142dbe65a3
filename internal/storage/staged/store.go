// Package staged implements the path-addressed staging backend. Files
// land under a purpose-named folder and are referenced by the path
// string "<folder>/<unixMillis>-<filename>". That naming convention is a
// persisted external format and must not change.
package staged

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-hiring-backend/internal/domain"
)

// Store writes and reads staged blobs under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the payload and returns its path reference. The timestamp
// prefix is collision avoidance by convention, not a guarantee: two
// same-named uploads in the same millisecond would still collide.
func (s *Store) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if !domain.KnownStagedFolder(folder) {
		return "", fmt.Errorf("unknown staged folder %q", folder)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", nowMillis(), sanitizeName(filename))

	dirPath := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dirPath, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}

	// Path references always use forward slashes, regardless of OS.
	return folder + "/" + name, nil
}

// Resolve maps a path reference to its filesystem location without
// touching the disk.
func (s *Store) Resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key")
	}
	return filepath.Join(s.baseDir, clean), nil
}

// Open opens a staged blob for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.Resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// sanitizeName strips directory components and characters that are
// hostile in paths, keeping the original filename recognizable since it
// is part of the reference.
func sanitizeName(filename string) string {
	name := filepath.Base(filepath.FromSlash(filename))
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." {
		return "upload"
	}
	return name
}
