package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudham/edudham-api/internal/models"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/response"
)

// HomepageConfigurator is the service surface the homepage handler needs.
type HomepageConfigurator interface {
	Get(ctx context.Context) (*models.HomepageConfig, error)
	Update(ctx context.Context, input models.HomepageConfigInput) (*models.HomepageConfig, error)
	Branding(ctx context.Context) (*models.Branding, error)
}

// HomepageHandler serves the homepage configuration endpoints.
type HomepageHandler struct {
	service HomepageConfigurator
}

// NewHomepageHandler creates a new handler.
func NewHomepageHandler(svc HomepageConfigurator) *HomepageHandler {
	return &HomepageHandler{service: svc}
}

// Get godoc
// @Summary Get homepage configuration
// @Description Returns the hero and branding configuration, or defaults when unset
// @Tags Homepage
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /homepage-config [get]
func (h *HomepageHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// Update godoc
// @Summary Update homepage configuration
// @Description Full replace of the homepage configuration document
// @Tags Homepage
// @Accept json
// @Produce json
// @Param payload body models.HomepageConfigInput true "Homepage config payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /homepage-config [put]
func (h *HomepageHandler) Update(c *gin.Context) {
	var input models.HomepageConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid homepage config payload"))
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// Branding godoc
// @Summary Get site branding
// @Description Lightweight subset of the homepage configuration for the site chrome
// @Tags Homepage
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /branding [get]
func (h *HomepageHandler) Branding(c *gin.Context) {
	branding, err := h.service.Branding(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, branding, nil)
}
