package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:5000/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadAndDownload(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("avatar-bytes"), "avatars/u1/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("avatars", "u1", "a.png"), path)

	reader, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "avatar-bytes", string(content))
}

func TestLocalStorage_Upload_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Upload(context.Background(), strings.NewReader("x"), "../escape.txt", "text/plain")
	assert.Error(t, err)
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("x"), "avatars/u1/a.jpg", "image/jpeg")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, path))

	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing object is not an error
	assert.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorage_Download_Missing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Download(context.Background(), "avatars/u1/missing.png")
	assert.Error(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "avatars/u1/a.png", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/avatars/u1/a.png", url)
}

func TestNewLocalStorage_CreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStorage(base, "http://localhost:5000/uploads")
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
