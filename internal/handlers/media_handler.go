package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService  services.MediaService
	importService services.ImportService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService, importService services.ImportService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:   base,
		mediaService:  mediaService,
		importService: importService,
	}
}

// RegisterRoutes mounts the admin media routes. The group is expected to be
// auth- and approval-gated by the caller.
func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	media := r.Group("/media")
	{
		media.GET("", h.AdminList)
		media.POST("", h.Upload)
		media.GET("/:id", h.Get)
		media.PUT("/:id", h.Update)
		media.DELETE("/:id", h.Delete)
		media.POST("/bulk-delete", h.BulkDelete)
		media.POST("/import", h.Import)
		media.POST("/bulk-import", h.BulkImport)
	}
}

// Upload handles a multipart batch: up to the configured maximum of files
// under the "files" field, a shared "category", and optional parallel arrays
// of per-file metadata.
func (h *MediaHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	req := &dto.UploadRequest{Category: c.PostForm("category")}
	if !h.validate(c, req) {
		return
	}

	files := form.File["files"]
	titles := c.PostFormArray("titles")
	descriptions := c.PostFormArray("descriptions")
	altTexts := c.PostFormArray("alt_texts")
	featured := c.PostFormArray("is_featured")
	sortOrders := c.PostFormArray("sort_orders")

	for i, fileHeader := range files {
		item := dto.UploadItem{
			File:        multipartUploadFile(fileHeader),
			Title:       at(titles, i),
			Description: at(descriptions, i),
			AltText:     at(altTexts, i),
		}
		if v := at(featured, i); v != "" {
			item.IsFeatured, _ = strconv.ParseBool(v)
		}
		if v := at(sortOrders, i); v != "" {
			item.SortOrder, _ = strconv.Atoi(v)
		}
		req.Items = append(req.Items, item)
	}

	result, err := h.mediaService.Upload(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := fmt.Sprintf("Successfully uploaded %d files.", result.Uploaded)
	if result.Failed > 0 {
		message += fmt.Sprintf(" Failed to upload %d files.", result.Failed)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"uploaded": result.Uploaded,
		"failed":   result.Failed,
		"errors":   result.Errors,
	})
}

// AdminList returns the admin media listing with search and filters.
func (h *MediaHandler) AdminList(c *gin.Context) {
	filters := repositories.MediaFilters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Type:     normalizeTypeFilter(c.Query("type")),
	}
	if v := c.Query("featured"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filters.Featured = &b
		}
	}

	media, err := h.mediaService.List(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"media":      media,
		"categories": adminCategoryLabels(),
		"filters": gin.H{
			"search":   filters.Search,
			"category": filters.Category,
			"type":     filters.Type,
			"featured": c.Query("featured"),
		},
	})
}

func (h *MediaHandler) Get(c *gin.Context) {
	media, err := h.mediaService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"media": media})
}

func (h *MediaHandler) Update(c *gin.Context) {
	var req dto.UpdateMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	media, err := h.mediaService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media updated successfully.",
		"media":   media,
	})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.mediaService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully."})
}

func (h *MediaHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result := h.mediaService.BulkDelete(c.Request.Context(), req.IDs)

	message := fmt.Sprintf("Successfully deleted %d media items.", result.Deleted)
	if result.Failed > 0 {
		message = fmt.Sprintf("Deleted %d items, failed to delete %d items.", result.Deleted, result.Failed)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"deleted": result.Deleted,
		"failed":  result.Failed,
		"errors":  result.Errors,
	})
}

// Import ingests a server-local directory. The path is trusted as given.
func (h *MediaHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.importService.ImportDirectory(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Successfully imported %d files to %s category.", result.Imported, req.Category),
		"imported": result.Imported,
		"failed":   result.Failed,
		"errors":   result.Errors,
	})
}

func (h *MediaHandler) BulkImport(c *gin.Context) {
	var req dto.BulkImportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.importService.BulkImport(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Bulk import completed. Processed %d categories.", result.Categories),
		"categories": result.Categories,
		"imported":   result.Imported,
		"failed":     result.Failed,
		"errors":     result.Errors,
	})
}

func multipartUploadFile(fh *multipart.FileHeader) dto.UploadFile {
	return dto.UploadFile{
		OriginalName: fh.Filename,
		Size:         fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// normalizeTypeFilter accepts the legacy "image" alias for photos.
func normalizeTypeFilter(t string) string {
	switch t {
	case "image", "photo":
		return models.MediaTypePhoto
	case "video":
		return models.MediaTypeVideo
	default:
		return ""
	}
}

func adminCategoryLabels() map[string]string {
	labels := make(map[string]string, len(models.MediaCategories))
	for _, c := range models.MediaCategories {
		labels[c] = models.MediaCategoryLabels[c]
	}
	return labels
}
