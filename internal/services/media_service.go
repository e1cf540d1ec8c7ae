package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"photostudio_backend/internal/imagemeta"
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/mediatype"
	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/internal/storage"
	"photostudio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MediaService interface {
	// Upload runs the batch upload pipeline; per-file failures are collected
	// in the result, not returned as errors.
	Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResult, error)

	// Get returns one media row with its URL resolved.
	Get(ctx context.Context, id string) (*models.Media, error)

	// List returns media rows with URLs resolved.
	List(ctx context.Context, filters repositories.MediaFilters) ([]models.Media, error)

	// Update applies the metadata allow-list to one row.
	Update(ctx context.Context, id string, req *dto.UpdateMediaRequest) (*models.Media, error)

	// Delete removes one asset: blob where present, row always.
	Delete(ctx context.Context, id string) error

	// BulkDelete applies Delete per id, isolating failures.
	BulkDelete(ctx context.Context, ids []string) *dto.BulkDeleteResult

	// DashboardStats aggregates counts and recent uploads.
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

// MediaConfig bounds the upload pipeline.
type MediaConfig struct {
	MaxFiles    int
	MaxFileSize int64
}

type mediaService struct {
	mediaRepo repositories.MediaRepository
	store     storage.Storage
	config    MediaConfig
}

func NewMediaService(mediaRepo repositories.MediaRepository, store storage.Storage, config MediaConfig) MediaService {
	if config.MaxFiles == 0 {
		config.MaxFiles = 50
	}
	if config.MaxFileSize == 0 {
		config.MaxFileSize = 100 << 20
	}

	return &mediaService{
		mediaRepo: mediaRepo,
		store:     store,
		config:    config,
	}
}

func (s *mediaService) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResult, error) {
	// Whole-request validation happens before any side effect
	if len(req.Items) == 0 {
		return nil, apperrors.ErrNoFiles
	}
	if len(req.Items) > s.config.MaxFiles {
		return nil, apperrors.ErrTooManyFiles(s.config.MaxFiles)
	}
	for _, item := range req.Items {
		if item.File.Size > s.config.MaxFileSize {
			return nil, apperrors.ErrFileTooLarge(item.File.OriginalName, s.config.MaxFileSize)
		}
	}

	result := &dto.UploadResult{}

	for index, item := range req.Items {
		if err := s.storeOne(ctx, req.Category, index, item); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			logger.With("file", item.File.OriginalName, "error", err.Error()).Warn("file upload failed")
			continue
		}
		result.Uploaded++
	}

	logger.Info("upload batch processed",
		"category", req.Category,
		"uploaded", result.Uploaded,
		"failed", result.Failed,
	)

	return result, nil
}

// storeOne runs one file through classify, store, probe and persist. The row
// write is the last step, so no row ever references a blob that was not
// written.
func (s *mediaService) storeOne(ctx context.Context, category string, index int, item dto.UploadItem) error {
	name := filepath.Base(item.File.OriginalName)
	ext := mediatype.Ext(name)
	kind := mediatype.Classify(name)
	if kind == mediatype.KindUnsupported {
		return apperrors.ErrUnsupportedMedia(name, ext)
	}

	src, err := item.File.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	base := sanitizeBaseName(strings.TrimSuffix(name, filepath.Ext(name)))
	filename := fmt.Sprintf("%s_%d_%d.%s", base, time.Now().Unix(), index, ext)
	storageKey := fmt.Sprintf("%s/%s/%s", storagePrefix(kind), category, filename)

	if err := s.store.Save(ctx, storageKey, bytes.NewReader(data), contentTypeFor(ext)); err != nil {
		return apperrors.ErrStorage(err, storageKey)
	}

	dimensions := ""
	if kind == mediatype.KindPhoto {
		// A photo we cannot decode still gets stored; dimensions stay empty
		if dims, err := imagemeta.Dimensions(bytes.NewReader(data)); err == nil {
			dimensions = dims
		} else {
			logger.With("file", name).Debug("dimension probe failed", "error", err.Error())
		}
	}

	title := item.Title
	if title == "" {
		title = humanizeFilename(base)
	}
	altText := item.AltText
	if altText == "" {
		altText = humanizeFilename(base)
	}

	media := &models.Media{
		Title:       title,
		Description: item.Description,
		Filename:    filename,
		Filepath:    storageKey,
		Category:    category,
		Type:        string(kind),
		FileSize:    int64(len(data)),
		Dimensions:  dimensions,
		AltText:     altText,
		IsFeatured:  item.IsFeatured,
		SortOrder:   item.SortOrder,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}

	return nil
}

func (s *mediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	media, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMediaNotFound(id)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	s.resolveURL(ctx, media)
	return media, nil
}

func (s *mediaService) List(ctx context.Context, filters repositories.MediaFilters) ([]models.Media, error) {
	media, err := s.mediaRepo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	for i := range media {
		s.resolveURL(ctx, &media[i])
	}
	return media, nil
}

func (s *mediaService) Update(ctx context.Context, id string, req *dto.UpdateMediaRequest) (*models.Media, error) {
	// Explicit allow-list: category and type never change after creation
	fields := map[string]interface{}{
		"title": req.Title,
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.AltText != nil {
		fields["alt_text"] = *req.AltText
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}

	if err := s.mediaRepo.UpdateFields(ctx, id, fields); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMediaNotFound(id)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	return s.Get(ctx, id)
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	media, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMediaNotFound(id)
		}
		return apperrors.ErrDatabase(err)
	}

	// Blob deletion never blocks removing the row; orphaned bytes are
	// preferable to listings that point at deleted assets
	if err := s.store.Delete(ctx, media.Filepath); err != nil {
		logger.With("media_id", id, "filepath", media.Filepath).Error("blob deletion failed", "error", err.Error())
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return apperrors.ErrDatabase(err)
	}

	logger.Info("media deleted", "media_id", id, "filepath", media.Filepath)
	return nil
}

func (s *mediaService) BulkDelete(ctx context.Context, ids []string) *dto.BulkDeleteResult {
	result := &dto.BulkDeleteResult{}

	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			result.Failed++
			if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
				result.Errors = append(result.Errors, fmt.Sprintf("Media with ID %s not found", id))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to delete media %s: %v", id, err))
			}
			continue
		}
		result.Deleted++
	}

	logger.Info("bulk delete completed",
		"total_requested", len(ids),
		"deleted", result.Deleted,
		"failed", result.Failed,
	)

	return result
}

func (s *mediaService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalImages, err = s.mediaRepo.Count(ctx, repositories.MediaFilters{Type: models.MediaTypePhoto}); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	if stats.TotalVideos, err = s.mediaRepo.Count(ctx, repositories.MediaFilters{Type: models.MediaTypeVideo}); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	featured := true
	if stats.FeaturedMedia, err = s.mediaRepo.Count(ctx, repositories.MediaFilters{Featured: &featured}); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	stats.TotalMedia = stats.TotalImages + stats.TotalVideos

	recent, err := s.mediaRepo.List(ctx, repositories.MediaFilters{Limit: 5})
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	for i := range recent {
		s.resolveURL(ctx, &recent[i])
		upload := dto.RecentUpload{
			ID:         recent[i].ID,
			Title:      recent[i].Title,
			Category:   recent[i].Category,
			Type:       recent[i].Type,
			UploadedAt: recent[i].CreatedAt,
		}
		if recent[i].Type == models.MediaTypePhoto {
			upload.Thumbnail = recent[i].URL
		}
		stats.RecentUploads = append(stats.RecentUploads, upload)
	}

	return stats, nil
}

func (s *mediaService) resolveURL(ctx context.Context, media *models.Media) {
	url, err := s.store.GetURL(ctx, media.Filepath)
	if err != nil {
		logger.With("filepath", media.Filepath).Warn("url resolution failed", "error", err.Error())
		return
	}
	media.URL = url
	media.ThumbnailURL = url
}

func storagePrefix(kind mediatype.Kind) string {
	if kind == mediatype.KindVideo {
		return "videos"
	}
	return "photos"
}

func contentTypeFor(ext string) string {
	if ct := mime.TypeByExtension("." + ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// sanitizeBaseName keeps letters, digits, dash and underscore; everything
// else becomes an underscore.
func sanitizeBaseName(base string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, base)
}

// humanizeFilename turns "summer_wedding-01" into "Summer wedding 01".
func humanizeFilename(base string) string {
	name := strings.NewReplacer("_", " ", "-", " ").Replace(base)
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
