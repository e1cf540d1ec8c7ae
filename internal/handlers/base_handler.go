package handlers

import (
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/validator"
	"photostudio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidateJSON binds the JSON body and runs validation. On failure it
// writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("failed to bind request body", "path", c.Request.URL.Path, "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.Warn("validation failed", "path", c.Request.URL.Path, "errors", vErr.Errors)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError forwards a service error to the error writer.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
