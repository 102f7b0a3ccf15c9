package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

type homepageServiceMock struct {
	stored    *models.HomepageConfig
	lastInput *models.HomepageConfigInput
}

func (m *homepageServiceMock) Get(ctx context.Context) (*models.HomepageConfig, error) {
	if m.stored == nil {
		defaults := models.DefaultHomepageConfig()
		return &defaults, nil
	}
	return m.stored, nil
}

func (m *homepageServiceMock) Update(ctx context.Context, input models.HomepageConfigInput) (*models.HomepageConfig, error) {
	m.lastInput = &input
	cfg := &models.HomepageConfig{ID: models.HomepageConfigID, HeroTitle: input.HeroTitle, SiteName: input.SiteName, SlideIntervalMS: input.SlideIntervalMS}
	m.stored = cfg
	return cfg, nil
}

func (m *homepageServiceMock) Branding(ctx context.Context) (*models.Branding, error) {
	cfg, _ := m.Get(ctx)
	return &models.Branding{SiteName: cfg.SiteName, LogoURL: cfg.LogoURL}, nil
}

func TestHomepageHandlerGetDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomepageHandler(&homepageServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/homepage-config", nil)

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.HomepageConfig `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Find Your Perfect", envelope.Data.HeroTitle)
	assert.Equal(t, 5000, envelope.Data.SlideIntervalMS)
}

func TestHomepageHandlerUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &homepageServiceMock{}
	handler := NewHomepageHandler(mock)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(models.HomepageConfigInput{HeroTitle: "Welcome", SiteName: "Edu Dham", SlideIntervalMS: 4000})
	req, _ := http.NewRequest(http.MethodPut, "/homepage-config", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mock.lastInput)
	assert.Equal(t, "Welcome", mock.lastInput.HeroTitle)
}

func TestHomepageHandlerUpdateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomepageHandler(&homepageServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/homepage-config", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Update(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHomepageHandlerBranding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHomepageHandler(&homepageServiceMock{stored: &models.HomepageConfig{SiteName: "Campus Hub", LogoURL: "/uploads/logo.png"}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/branding", nil)

	handler.Branding(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.Branding `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Campus Hub", envelope.Data.SiteName)
}
