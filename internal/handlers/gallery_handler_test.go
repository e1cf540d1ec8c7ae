package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMediaService records the filters it was listed with.
type fakeMediaService struct {
	lastFilters repositories.MediaFilters
	media       []models.Media
}

func (f *fakeMediaService) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResult, error) {
	return &dto.UploadResult{Uploaded: len(req.Items)}, nil
}

func (f *fakeMediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	return nil, nil
}

func (f *fakeMediaService) List(ctx context.Context, filters repositories.MediaFilters) ([]models.Media, error) {
	f.lastFilters = filters
	return f.media, nil
}

func (f *fakeMediaService) Update(ctx context.Context, id string, req *dto.UpdateMediaRequest) (*models.Media, error) {
	return nil, nil
}

func (f *fakeMediaService) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeMediaService) BulkDelete(ctx context.Context, ids []string) *dto.BulkDeleteResult {
	return &dto.BulkDeleteResult{}
}

func (f *fakeMediaService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	return &dto.DashboardStats{}, nil
}

func galleryTestRouter(svc *fakeMediaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewGalleryHandler(NewBaseHandler(validator.New()), svc)
	handler.RegisterRoutes(r.Group("/api"))
	return r
}

func TestGalleryList_CuratedOrderAndFilters(t *testing.T) {
	svc := &fakeMediaService{media: []models.Media{{Title: "Hero", Category: "wedding", Type: models.MediaTypePhoto}}}
	r := galleryTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery?category=wedding&type=image", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastFilters.GalleryOrder)
	assert.Equal(t, "wedding", svc.lastFilters.Category)
	// Legacy "image" alias maps onto the photo type.
	assert.Equal(t, models.MediaTypePhoto, svc.lastFilters.Type)
	assert.Contains(t, w.Body.String(), "Hero")
	assert.Contains(t, w.Body.String(), "categories")
}

func TestGalleryList_RejectsUnknownCategory(t *testing.T) {
	r := galleryTestRouter(&fakeMediaService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery?category=birthday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "birthday")
}

func TestGalleryFeatured(t *testing.T) {
	svc := &fakeMediaService{}
	r := galleryTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/featured", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilters.Featured)
	assert.True(t, *svc.lastFilters.Featured)
	assert.True(t, svc.lastFilters.GalleryOrder)
}

func TestGalleryList_CategoryLabelsCoverAllCategories(t *testing.T) {
	r := galleryTestRouter(&fakeMediaService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	for _, category := range models.MediaCategories {
		assert.True(t, strings.Contains(w.Body.String(), category), "missing category %s", category)
	}
}
