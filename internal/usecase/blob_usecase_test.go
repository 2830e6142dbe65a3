package usecase_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/storage/staged"
	"go-hiring-backend/internal/usecase"
	"go-hiring-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

// memObjectStore is an in-memory object.Store for tests.
type memObjectStore struct {
	blobs map[domain.Ref][]byte
	infos map[domain.Ref]domain.BlobInfo
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{
		blobs: map[domain.Ref][]byte{},
		infos: map[domain.Ref]domain.BlobInfo{},
	}
}

func (s *memObjectStore) Put(ctx context.Context, info domain.BlobInfo, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.blobs[info.Ref] = data
	s.infos[info.Ref] = info
	return nil
}

func (s *memObjectStore) Get(ctx context.Context, ref domain.Ref) (io.ReadCloser, *domain.BlobInfo, error) {
	data, ok := s.blobs[ref]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	info := s.infos[ref]
	return io.NopCloser(bytes.NewReader(data)), &info, nil
}

var pngPayload = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x01}, 64)...)

func newBlobUC(t *testing.T, maxBytes int64) (domain.BlobUsecase, *memObjectStore) {
	t.Helper()
	objects := newMemObjectStore()
	uc := usecase.NewBlobUsecase(staged.New(t.TempDir()), objects, maxBytes)
	return uc, objects
}

func TestUploadStaged(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a folder-qualified timestamped path", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		path, err := uc.UploadStaged(ctx, domain.StagedFolderDashboard, "photo.png", bytes.NewReader(pngPayload))

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, domain.StagedFolderDashboard+"/"))
		assert.True(t, strings.HasSuffix(path, "-photo.png"))
	})

	t.Run("unknown folder falls back to default", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		path, err := uc.UploadStaged(ctx, "../../etc", "photo.png", bytes.NewReader(pngPayload))

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, domain.StagedFolderDefault+"/"))
	})

	t.Run("rejects disallowed file types", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		_, err := uc.UploadStaged(ctx, domain.StagedFolderDefault, "payload.exe", bytes.NewReader([]byte{0x4D, 0x5A}))

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("rejects mismatched content", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		_, err := uc.UploadStaged(ctx, domain.StagedFolderDefault, "fake.png", bytes.NewReader([]byte("plain text, not a png")))

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("rejects oversize payloads", func(t *testing.T) {
		uc, _ := newBlobUC(t, 16)

		_, err := uc.UploadStaged(ctx, domain.StagedFolderDefault, "photo.png", bytes.NewReader(pngPayload))

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestUploadAddressedAndDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips through the object store", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		info, err := uc.UploadAddressed(ctx, "resume.pdf", strings.NewReader("%PDF-1.4 body"))
		assert.NoError(t, err)
		assert.True(t, domain.IsRef(string(info.Ref)))
		assert.Equal(t, "resume.pdf", info.Filename)
		assert.Equal(t, int64(len("%PDF-1.4 body")), info.Size)

		rc, got, err := uc.Download(ctx, string(info.Ref))
		assert.NoError(t, err)
		defer rc.Close()

		data, _ := io.ReadAll(rc)
		assert.Equal(t, "%PDF-1.4 body", string(data))
		assert.Equal(t, info.Ref, got.Ref)
	})

	t.Run("malformed reference", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		_, _, err := uc.Download(ctx, "not-a-ref")

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("unknown reference", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		_, _, err := uc.Download(ctx, string(domain.NewRef()))

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("addressed refs map to the download endpoint", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)
		ref := domain.NewRef()

		location, err := uc.Resolve(ctx, string(ref))

		assert.NoError(t, err)
		assert.Equal(t, "/v1/blobs/"+string(ref), location)
	})

	t.Run("staged paths map into the staging area", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		location, err := uc.Resolve(ctx, "user-dashboard/1700000000000-photo.png")

		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(location, filepath.Join("user-dashboard", "1700000000000-photo.png")))
	})

	t.Run("bare legacy filenames are guessed into the default folder", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		location, err := uc.Resolve(ctx, "old-resume.pdf")

		assert.NoError(t, err)
		assert.Contains(t, location, filepath.Join(domain.StagedFolderDefault, "old-resume.pdf"))
	})

	t.Run("empty reference", func(t *testing.T) {
		uc, _ := newBlobUC(t, 1<<20)

		_, err := uc.Resolve(ctx, "")

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}
