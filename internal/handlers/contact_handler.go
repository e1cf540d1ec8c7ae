package handlers

import (
	"net/http"

	"photostudio_backend/internal/services"
	"photostudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ContactHandler serves the public contact and booking forms. Both endpoints
// always answer with a success message; notification delivery is best-effort.
type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Contact)
	r.POST("/booking", h.Booking)
}

func (h *ContactHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message := h.contactService.SendContact(&req)
	c.JSON(http.StatusOK, gin.H{"success": message})
}

func (h *ContactHandler) Booking(c *gin.Context) {
	var req dto.BookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message := h.contactService.SendBooking(&req)
	c.JSON(http.StatusOK, gin.H{"success": message})
}
