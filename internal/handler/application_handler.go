package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/internal/service"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/response"
)

// ApplicationHandler wires HTTP endpoints to the application service.
type ApplicationHandler struct {
	service *service.ApplicationService
}

// NewApplicationHandler creates a new handler.
func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: svc}
}

// Create godoc
// @Summary Submit application
// @Description Submit a lead for one university through the public form
// @Tags Applications
// @Accept json
// @Produce json
// @Param payload body models.ApplicationInput true "Application payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var input models.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid application payload"))
		return
	}

	app, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, app)
}

// List godoc
// @Summary List applications
// @Description Admins see all leads, managers only their university's. Without page_size the whole list is returned.
// @Tags Applications
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.service.ListForActor(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, pagination := paginate(len(apps), c.Query("page"), c.Query("page_size"))
	if pagination == nil {
		response.JSON(c, http.StatusOK, apps, nil)
		return
	}
	response.JSON(c, http.StatusOK, apps[page.from:page.to], pagination)
}

type pageWindow struct {
	from, to int
}

// paginate turns the optional page query parameters into a slice window
// plus envelope metadata. Missing or invalid parameters mean no paging.
func paginate(total int, pageParam, sizeParam string) (pageWindow, *models.Pagination) {
	size, err := strconv.Atoi(sizeParam)
	if err != nil || size <= 0 {
		return pageWindow{}, nil
	}
	page, err := strconv.Atoi(pageParam)
	if err != nil || page <= 0 {
		page = 1
	}

	from := (page - 1) * size
	if from > total {
		from = total
	}
	to := from + size
	if to > total {
		to = total
	}
	return pageWindow{from: from, to: to}, &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

// ListByUniversity godoc
// @Summary List applications for one university
// @Tags Applications
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /universities/{id}/applications [get]
func (h *ApplicationHandler) ListByUniversity(c *gin.Context) {
	apps, err := h.service.ListByUniversity(c.Request.Context(), c.Param("id"), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, apps, nil)
}

// UpdateStatus godoc
// @Summary Update application status
// @Description Move a lead through the workflow. The status comes as a query parameter.
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Param status query string true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "status query parameter is required"))
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), status, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, app, nil)
}

// Delete godoc
// @Summary Delete application
// @Tags Applications
// @Param id path string true "Application ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), claimsFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export applications
// @Description Download the actor-visible leads as xlsx, csv or pdf
// @Tags Applications
// @Produce application/octet-stream
// @Param university_id query string false "Limit to one university"
// @Param format query string false "xlsx, csv or pdf (default xlsx)"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Router /applications/export [get]
func (h *ApplicationHandler) Export(c *gin.Context) {
	filename, contentType, raw, err := h.service.Export(
		c.Request.Context(),
		c.Query("university_id"),
		c.DefaultQuery("format", "xlsx"),
		claimsFromContext(c),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Binary(c, contentType, filename, raw)
}
