package local

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-assistant/internal/shared/storage/object"
)

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveAndOpen(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	payload := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 5000)...)
	key, size, mime, err := store.Save(context.Background(), "../My Resume.pdf", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, "My_Resume.pdf", key)
	assert.Equal(t, int64(len(payload)), size)
	assert.Equal(t, "application/pdf", mime)

	rc, err := store.Open(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSaveOverwritesSameName(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, _, err = store.Save(context.Background(), "cv.pdf", strings.NewReader("first version"))
	require.NoError(t, err)
	key, _, _, err := store.Save(context.Background(), "cv.pdf", strings.NewReader("second"))
	require.NoError(t, err)

	path, err := store.Path(key)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestOpenRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../secret", "/etc/passwd", ""} {
		_, err := store.Open(context.Background(), key)
		assert.ErrorIs(t, err, object.ErrInvalidKey, "key %q", key)
	}
}

func TestSaveHonoursCancelledContext(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _, err = store.Save(ctx, "cv.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)
}
