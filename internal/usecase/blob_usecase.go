package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/storage"
	"go-hiring-backend/internal/storage/object"
	"go-hiring-backend/internal/storage/staged"
	"go-hiring-backend/pkg/apperror"
	"go-hiring-backend/pkg/filecheck"
)

type blobUsecase struct {
	staged   *staged.Store
	objects  object.Store
	maxBytes int64
}

func NewBlobUsecase(stagedStore *staged.Store, objects object.Store, maxBytes int64) domain.BlobUsecase {
	return &blobUsecase{
		staged:   stagedStore,
		objects:  objects,
		maxBytes: maxBytes,
	}
}

// UploadStaged ingests into the path-addressed staging area. Unknown
// folder names fall back to the default folder rather than failing, so a
// caller picking an upload purpose cannot fabricate new staging areas.
func (u *blobUsecase) UploadStaged(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if !domain.KnownStagedFolder(folder) {
		folder = domain.StagedFolderDefault
	}

	data, err := u.readBounded(r)
	if err != nil {
		return "", err
	}

	if err := filecheck.Validate(filename, data, detectContentType(data)); err != nil {
		return "", apperror.Validation(err.Error())
	}

	path, err := u.staged.Save(ctx, folder, filename, bytes.NewReader(data))
	if err != nil {
		return "", apperror.Upload("could not store file", err)
	}
	return path, nil
}

// UploadAddressed ingests into the content-addressed store under a
// freshly allocated ref.
func (u *blobUsecase) UploadAddressed(ctx context.Context, filename string, r io.Reader) (*domain.BlobInfo, error) {
	data, err := u.readBounded(r)
	if err != nil {
		return nil, err
	}

	info := domain.BlobInfo{
		Ref:         domain.NewRef(),
		Filename:    filename,
		ContentType: detectContentType(data),
		Size:        int64(len(data)),
		CreatedAt:   time.Now(),
	}

	if err := u.objects.Put(ctx, info, bytes.NewReader(data)); err != nil {
		return nil, apperror.Upload("could not store blob", err)
	}
	return &info, nil
}

func (u *blobUsecase) Download(ctx context.Context, ref string) (io.ReadCloser, *domain.BlobInfo, error) {
	parsed, err := domain.ParseRef(ref)
	if err != nil {
		return nil, nil, apperror.Validation("malformed blob reference")
	}

	rc, info, err := u.objects.Get(ctx, parsed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("no blob stored for reference")
		}
		return nil, nil, apperror.Upload("could not retrieve blob", err)
	}
	return rc, info, nil
}

// Resolve maps any of the three accumulated reference shapes to a
// retrievable location: addressed refs to the download endpoint, staged
// paths to their filesystem location, and bare legacy filenames to a
// best-effort guess in the default folder.
func (u *blobUsecase) Resolve(ctx context.Context, reference string) (string, error) {
	if reference == "" {
		return "", apperror.Validation("empty reference")
	}

	parsed := storage.ParseReference(reference)
	switch parsed.Kind {
	case storage.ReferenceAddressed:
		return "/v1/blobs/" + string(parsed.Ref), nil
	case storage.ReferenceStaged:
		return u.staged.Resolve(parsed.Path)
	default:
		return u.staged.Resolve(domain.StagedFolderDefault + "/" + parsed.Path)
	}
}

// readBounded buffers at most maxBytes+1 so oversize payloads are
// detected without unbounded memory growth.
func (u *blobUsecase) readBounded(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, apperror.Upload("could not read upload", err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, apperror.Validation(fmt.Sprintf("file exceeds %d byte limit", u.maxBytes))
	}
	return data, nil
}

func detectContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}
