package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"photostudio_backend/internal/services/dto"
	"photostudio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644))
}

func TestImportDirectory(t *testing.T) {
	repo := newFakeMediaRepo()
	store := newFakeBlobStore()
	svc := NewImportService(newTestMediaService(repo, store))

	dir := t.TempDir()
	writeTestFile(t, dir, "portrait.jpg")
	writeTestFile(t, dir, "reel.mp4")
	writeTestFile(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	result, err := svc.ImportDirectory(context.Background(), &dto.ImportRequest{
		DirectoryPath: dir,
		Category:      "studio",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "notes.txt")
	assert.Len(t, repo.rows, 2)
}

func TestImportDirectory_MissingDirectory(t *testing.T) {
	svc := NewImportService(newTestMediaService(newFakeMediaRepo(), newFakeBlobStore()))

	_, err := svc.ImportDirectory(context.Background(), &dto.ImportRequest{
		DirectoryPath: filepath.Join(t.TempDir(), "does-not-exist"),
		Category:      "studio",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "Directory not found")
}

func TestBulkImport_SkipsMissingCategories(t *testing.T) {
	repo := newFakeMediaRepo()
	store := newFakeBlobStore()
	svc := NewImportService(newTestMediaService(repo, store))

	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "wedding"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(base, "concert"), 0o755))
	writeTestFile(t, filepath.Join(base, "wedding"), "first-look.jpg")
	writeTestFile(t, filepath.Join(base, "concert"), "encore.mp4")

	result, err := svc.BulkImport(context.Background(), &dto.BulkImportRequest{BaseDirectory: base})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Categories)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)

	categories := make(map[string]bool)
	for _, media := range repo.rows {
		categories[media.Category] = true
	}
	assert.True(t, categories["wedding"])
	assert.True(t, categories["concert"])
}
