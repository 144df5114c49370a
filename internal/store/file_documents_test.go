package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalFileStorage_CreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "files")

	fs, err := NewLocalFileStorage(config.Files{Dir: dir}, logger.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, fs.Root())
}

func TestNewLocalFileStorage_EmptyDir(t *testing.T) {
	_, err := NewLocalFileStorage(config.Files{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestLocalFileStorage_Save(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewLocalFileStorage(config.Files{Dir: dir}, logger.Nop())
	require.NoError(t, err)

	rel, err := fs.Save(context.Background(), 12, "notes.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "12/notes.pdf", rel)

	content, err := os.ReadFile(filepath.Join(dir, "12", "notes.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(content))

	entries, err := os.ReadDir(filepath.Join(dir, "12"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestLocalFileStorage_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewLocalFileStorage(config.Files{Dir: dir}, logger.Nop())
	require.NoError(t, err)

	_, err = fs.Save(context.Background(), 1, "a.pdf", []byte("old"))
	require.NoError(t, err)
	_, err = fs.Save(context.Background(), 1, "a.pdf", []byte("new"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "1", "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestLocalFileStorage_RejectsUnsafeInput(t *testing.T) {
	fs, err := NewLocalFileStorage(config.Files{Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name    string
		ownerID int64
		file    string
	}{
		{"empty name", 1, ""},
		{"parent dir", 1, ".."},
		{"traversal", 1, "../x.pdf"},
		{"nested", 1, "a/b.pdf"},
		{"backslash", 1, `a\b.pdf`},
		{"hidden", 1, ".upload-1"},
		{"zero owner", 0, "a.pdf"},
		{"negative owner", -1, "a.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fs.Save(context.Background(), tt.ownerID, tt.file, []byte("x"))
			assert.ErrorIs(t, err, ErrInvalidFile)
		})
	}
}

func TestLocalFileStorage_CanceledContext(t *testing.T) {
	fs, err := NewLocalFileStorage(config.Files{Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fs.Save(ctx, 1, "a.pdf", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
