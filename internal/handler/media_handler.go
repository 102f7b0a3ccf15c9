package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudham/edudham-api/internal/service"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/response"
)

// MediaHandler serves the standalone photo upload endpoint used by the
// editor widgets.
type MediaHandler struct {
	service *service.MediaService
}

// NewMediaHandler creates a new handler.
func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// Upload godoc
// @Summary Upload photo
// @Description Store an image and return its public URL
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 415 {object} response.Envelope
// @Router /upload/photo [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required"))
		return
	}

	uploaded, err := h.service.Upload(header)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, uploaded)
}

// Delete godoc
// @Summary Delete uploaded photo
// @Tags Media
// @Param filename path string true "Stored filename"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /upload/photo/{filename} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("filename")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
