package repositories

import (
	"context"

	"photostudio_backend/internal/models"

	"gorm.io/gorm"
)

// MediaFilters narrows media listings. Zero values mean "no filter".
type MediaFilters struct {
	Search   string // LIKE on title/description
	Category string
	Type     string // photo | video
	Featured *bool
	Limit    int
	// Gallery ordering (sort_order asc, created_at desc) when true,
	// plain created_at desc otherwise
	GalleryOrder bool
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	FindByID(ctx context.Context, id string) (*models.Media, error)
	List(ctx context.Context, filters MediaFilters) ([]models.Media, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filters MediaFilters) (int64, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) FindByID(ctx context.Context, id string) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) List(ctx context.Context, filters MediaFilters) ([]models.Media, error) {
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.Media{}), filters)

	if filters.GalleryOrder {
		query = query.Order("sort_order asc").Order("created_at desc")
	} else {
		query = query.Order("created_at desc")
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var media []models.Media
	if err := query.Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Media{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Media{}, "id = ?", id).Error
}

func (r *mediaRepository) Count(ctx context.Context, filters MediaFilters) (int64, error) {
	var count int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&models.Media{}), filters).Count(&count).Error
	return count, err
}

func (r *mediaRepository) applyFilters(query *gorm.DB, filters MediaFilters) *gorm.DB {
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Featured != nil {
		query = query.Where("is_featured = ?", *filters.Featured)
	}
	return query
}
