package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSave(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)

	url, err := l.Save(context.Background(), "photo.JPG", strings.NewReader("image bytes"), 11, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/media/")))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestLocalSaveRejectsBadExtension(t *testing.T) {
	l := NewLocal(t.TempDir())

	_, err := l.Save(context.Background(), "script.exe", strings.NewReader("nope"), 4, "application/octet-stream")
	assert.Error(t, err)
}

func TestLocalSaveRejectsOversized(t *testing.T) {
	l := NewLocal(t.TempDir())

	_, err := l.Save(context.Background(), "big.png", strings.NewReader(""), MaxImageSize+1, "image/png")
	assert.Error(t, err)
}

func TestLocalSaveUniqueNames(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)

	first, err := l.Save(context.Background(), "pic.png", strings.NewReader("a"), 1, "image/png")
	require.NoError(t, err)
	second, err := l.Save(context.Background(), "pic.png", strings.NewReader("b"), 1, "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
