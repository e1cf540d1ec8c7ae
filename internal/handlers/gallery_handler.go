package handlers

import (
	"net/http"

	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services"
	"photostudio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// GalleryHandler serves the public, read-only gallery endpoints.
type GalleryHandler struct {
	*BaseHandler
	mediaService services.MediaService
}

func NewGalleryHandler(base *BaseHandler, mediaService services.MediaService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:  base,
		mediaService: mediaService,
	}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gallery", h.List)
	r.GET("/featured", h.Featured)
}

// List returns the public gallery in curated order, optionally filtered by
// category and type via query parameters.
func (h *GalleryHandler) List(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown category: "+category))
		return
	}

	filters := repositories.MediaFilters{
		Category:     category,
		Type:         normalizeTypeFilter(c.Query("type")),
		GalleryOrder: true,
	}

	media, err := h.mediaService.List(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"media":      media,
		"category":   category,
		"categories": adminCategoryLabels(),
	})
}

// Featured returns only curated highlights, for the landing page.
func (h *GalleryHandler) Featured(c *gin.Context) {
	featured := true
	media, err := h.mediaService.List(c.Request.Context(), repositories.MediaFilters{
		Featured:     &featured,
		GalleryOrder: true,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"media": media})
}
