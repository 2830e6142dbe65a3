package staged

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"go-hiring-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips content through a path reference", func(t *testing.T) {
		store := New(t.TempDir())

		path, err := store.Save(ctx, domain.StagedFolderDefault, "resume.pdf", strings.NewReader("%PDF body"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(path, "default/"))
		assert.True(t, strings.HasSuffix(path, "-resume.pdf"))
		assert.NotContains(t, path, "\\")

		rc, err := store.Open(ctx, path)
		require.NoError(t, err)
		defer rc.Close()

		data, _ := io.ReadAll(rc)
		assert.Equal(t, "%PDF body", string(data))
	})

	t.Run("rejects unknown folders", func(t *testing.T) {
		store := New(t.TempDir())

		_, err := store.Save(ctx, "secrets", "file.txt", strings.NewReader("x"))

		assert.Error(t, err)
	})

	t.Run("strips directory components from hostile filenames", func(t *testing.T) {
		store := New(t.TempDir())

		path, err := store.Save(ctx, domain.StagedFolderDashboard, "../../../etc/passwd", strings.NewReader("x"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(path, "user-dashboard/"))
		assert.True(t, strings.HasSuffix(path, "-passwd"))
		assert.NotContains(t, path, "..")
	})

	t.Run("empty filename falls back to a placeholder", func(t *testing.T) {
		store := New(t.TempDir())

		path, err := store.Save(ctx, domain.StagedFolderDefault, "", strings.NewReader("x"))
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(path, "-upload"))
	})
}

func TestResolve(t *testing.T) {
	base := t.TempDir()
	store := New(base)

	t.Run("maps a key under the base directory", func(t *testing.T) {
		location, err := store.Resolve("default/123-file.pdf")

		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "default", "123-file.pdf"), location)
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, err := store.Resolve("../outside")
		assert.Error(t, err)
	})

	t.Run("rejects absolute paths", func(t *testing.T) {
		_, err := store.Resolve("/etc/passwd")
		assert.Error(t, err)
	})
}
