package handlers

import (
	"net/http"

	"photostudio_backend/internal/services"
	"photostudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard and user management endpoints.
type AdminHandler struct {
	*BaseHandler
	mediaService services.MediaService
	userService  services.UserService
}

func NewAdminHandler(base *BaseHandler, mediaService services.MediaService, userService services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		mediaService: mediaService,
		userService:  userService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
	r.GET("/users", h.ListUsers)
	r.PUT("/users/:id/approve", h.ApproveUser)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.mediaService.DashboardStats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ApproveUser grants or revokes a user's access to the admin area.
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	var req dto.ApproveUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.SetApproved(c.Request.Context(), c.Param("id"), *req.Approved)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "User approved successfully."
	if !*req.Approved {
		message = "User approval revoked."
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    user,
	})
}
