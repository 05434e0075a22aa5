package filestorage_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hmucanze19/algafood-api/internal/adapters/out/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPhotoStorage_StoreRetrieveRemove(t *testing.T) {
	ctx := t.Context()
	storage := filestorage.NewLocalPhotoStorage(filepath.Join(t.TempDir(), "photos"))

	err := storage.Store(ctx, "a1b2-menu.png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	content, err := storage.Retrieve(ctx, "a1b2-menu.png")
	require.NoError(t, err)
	data, err := io.ReadAll(content)
	require.NoError(t, err)
	require.NoError(t, content.Close())
	assert.Equal(t, "png bytes", string(data))

	require.NoError(t, storage.Remove(ctx, "a1b2-menu.png"))
	_, err = storage.Retrieve(ctx, "a1b2-menu.png")
	assert.Error(t, err)
}

func TestLocalPhotoStorage_NameCannotEscapeDirectory(t *testing.T) {
	ctx := t.Context()
	dir := t.TempDir()
	storage := filestorage.NewLocalPhotoStorage(filepath.Join(dir, "photos"))

	err := storage.Store(ctx, "../escape.png", strings.NewReader("data"))
	require.NoError(t, err)

	content, err := storage.Retrieve(ctx, "escape.png")
	require.NoError(t, err)
	require.NoError(t, content.Close())
}
