package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/internal/service"
	"github.com/edudham/edudham-api/pkg/directory"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/response"
)

// UniversityHandler wires HTTP endpoints to the university service.
type UniversityHandler struct {
	service *service.UniversityService
	media   *service.MediaService
}

// NewUniversityHandler creates a new handler.
func NewUniversityHandler(svc *service.UniversityService, media *service.MediaService) *UniversityHandler {
	return &UniversityHandler{service: svc, media: media}
}

// List godoc
// @Summary List universities
// @Description List universities, optionally filtered by search, location and category
// @Tags Universities
// @Produce json
// @Param search query string false "Free-text search"
// @Param location query string false "Location facet"
// @Param category query string false "Category facet"
// @Success 200 {object} response.Envelope
// @Router /universities [get]
func (h *UniversityHandler) List(c *gin.Context) {
	filter := directory.Filter{
		Query:    c.Query("search"),
		Location: c.Query("location"),
		Category: c.Query("category"),
	}

	universities, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, universities, nil)
}

// Get godoc
// @Summary Get university
// @Tags Universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /universities/{id} [get]
func (h *UniversityHandler) Get(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u, nil)
}

// FilterOptions godoc
// @Summary List filter vocabulary
// @Description Returns the locations and categories used by the listing filters
// @Tags Universities
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /universities/filters/options [get]
func (h *UniversityHandler) FilterOptions(c *gin.Context) {
	opts, err := h.service.FilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, opts, nil)
}

// Create godoc
// @Summary Create university
// @Tags Universities
// @Accept json
// @Produce json
// @Param payload body models.UniversityInput true "University payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /universities [post]
func (h *UniversityHandler) Create(c *gin.Context) {
	var input models.UniversityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid university payload"))
		return
	}

	u, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, u)
}

// Update godoc
// @Summary Update university
// @Description Full replace of one listing. Managers may only update their own.
// @Tags Universities
// @Accept json
// @Produce json
// @Param id path string true "University ID"
// @Param payload body models.UniversityInput true "University payload"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /universities/{id} [put]
func (h *UniversityHandler) Update(c *gin.Context) {
	var input models.UniversityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid university payload"))
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.Param("id"), input, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u, nil)
}

// Delete godoc
// @Summary Delete university
// @Tags Universities
// @Param id path string true "University ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /universities/{id} [delete]
func (h *UniversityHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UploadPhoto godoc
// @Summary Upload main photo
// @Description Stores an image upload and sets it as the listing's main photo
// @Tags Universities
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "University ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 415 {object} response.Envelope
// @Router /universities/{id}/photo [post]
func (h *UniversityHandler) UploadPhoto(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required"))
		return
	}

	uploaded, err := h.media.Upload(header)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.service.SetMainPhoto(c.Request.Context(), c.Param("id"), uploaded.URL, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u, nil)
}

// BulkTemplate godoc
// @Summary Download bulk import template
// @Tags Universities
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /universities/bulk-template [get]
func (h *UniversityHandler) BulkTemplate(c *gin.Context) {
	raw, err := h.service.BulkTemplate()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Binary(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "university_template.xlsx", raw)
}

// BulkImport godoc
// @Summary Bulk import universities
// @Description Create listings from an uploaded Excel workbook
// @Tags Universities
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX workbook"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /universities/bulk-upload [post]
func (h *UniversityHandler) BulkImport(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	raw, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}

	result, err := h.service.BulkImport(c.Request.Context(), raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
