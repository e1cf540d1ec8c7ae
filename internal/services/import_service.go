package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/models"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/pkg/apperrors"
)

type ImportService interface {
	// ImportDirectory runs the upload pipeline over a server-local directory.
	// Metadata is always derived from filenames; there are no overrides.
	ImportDirectory(ctx context.Context, req *dto.ImportRequest) (*dto.ImportResult, error)

	// BulkImport imports each existing <base>/<category> subdirectory,
	// skipping categories whose directory is missing.
	BulkImport(ctx context.Context, req *dto.BulkImportRequest) (*dto.BulkImportResult, error)
}

type importService struct {
	media MediaService
}

func NewImportService(media MediaService) ImportService {
	return &importService{media: media}
}

func (s *importService) ImportDirectory(ctx context.Context, req *dto.ImportRequest) (*dto.ImportResult, error) {
	info, err := os.Stat(req.DirectoryPath)
	if err != nil || !info.IsDir() {
		return nil, apperrors.NewBadRequestError("Directory not found: " + req.DirectoryPath)
	}

	entries, err := os.ReadDir(req.DirectoryPath)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to read directory: %w", err))
	}

	result := &dto.ImportResult{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(req.DirectoryPath, entry.Name())
		fileInfo, err := entry.Info()
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to stat %s: %v", entry.Name(), err))
			continue
		}

		item := dto.UploadItem{
			File: dto.UploadFile{
				OriginalName: entry.Name(),
				Size:         fileInfo.Size(),
				Open: func() (io.ReadCloser, error) {
					return os.Open(path)
				},
			},
		}

		// One file per pipeline call keeps the per-file isolation semantics
		// of the upload path without duplicating it
		batch, err := s.media.Upload(ctx, &dto.UploadRequest{
			Category: req.Category,
			Items:    []dto.UploadItem{item},
		})
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %s: %v", entry.Name(), err))
			continue
		}

		result.Imported += batch.Uploaded
		result.Failed += batch.Failed
		result.Errors = append(result.Errors, batch.Errors...)
	}

	logger.Info("directory import completed",
		"directory", req.DirectoryPath,
		"category", req.Category,
		"imported", result.Imported,
		"failed", result.Failed,
	)

	return result, nil
}

func (s *importService) BulkImport(ctx context.Context, req *dto.BulkImportRequest) (*dto.BulkImportResult, error) {
	info, err := os.Stat(req.BaseDirectory)
	if err != nil || !info.IsDir() {
		return nil, apperrors.NewBadRequestError("Base directory not found: " + req.BaseDirectory)
	}

	result := &dto.BulkImportResult{}

	for _, category := range models.MediaCategories {
		categoryPath := filepath.Join(req.BaseDirectory, category)
		if info, err := os.Stat(categoryPath); err != nil || !info.IsDir() {
			// Missing subdirectory is a skip, not a failure
			continue
		}

		imported, err := s.ImportDirectory(ctx, &dto.ImportRequest{
			DirectoryPath: categoryPath,
			Category:      category,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import category %s: %v", category, err))
			continue
		}

		result.Categories++
		result.Imported += imported.Imported
		result.Failed += imported.Failed
		result.Errors = append(result.Errors, imported.Errors...)
	}

	return result, nil
}
