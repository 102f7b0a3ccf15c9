package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudham/edudham-api/internal/service"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/response"
)

// AdminHandler serves the admin console's stats and manager management.
type AdminHandler struct {
	stats *service.StatsService
	users *service.UserService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(stats *service.StatsService, users *service.UserService) *AdminHandler {
	return &AdminHandler{stats: stats, users: users}
}

// Stats godoc
// @Summary Admin dashboard counters
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// ListManagers godoc
// @Summary List manager accounts
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/managers [get]
func (h *AdminHandler) ListManagers(c *gin.Context) {
	managers, err := h.users.ListManagers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, managers, nil)
}

// CreateManager godoc
// @Summary Create manager account
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.CreateManagerRequest true "Manager payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/managers [post]
func (h *AdminHandler) CreateManager(c *gin.Context) {
	var req service.CreateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid manager payload"))
		return
	}

	manager, err := h.users.CreateManager(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, manager)
}

// UpdateManager godoc
// @Summary Update manager account
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Manager ID"
// @Param payload body service.UpdateManagerRequest true "Manager payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/managers/{id} [put]
func (h *AdminHandler) UpdateManager(c *gin.Context) {
	var req service.UpdateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid manager payload"))
		return
	}

	manager, err := h.users.UpdateManager(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, manager, nil)
}

// DeleteManager godoc
// @Summary Delete manager account
// @Tags Admin
// @Param id path string true "Manager ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/managers/{id} [delete]
func (h *AdminHandler) DeleteManager(c *gin.Context) {
	if err := h.users.DeleteManager(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
