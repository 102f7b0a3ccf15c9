package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/models"
)

type mockHomepageRepo struct {
	stored *models.HomepageConfig
	getErr error
}

func (m *mockHomepageRepo) Get(ctx context.Context) (*models.HomepageConfig, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.stored == nil {
		return nil, sql.ErrNoRows
	}
	return m.stored, nil
}

func (m *mockHomepageRepo) Upsert(ctx context.Context, cfg *models.HomepageConfig) error {
	m.stored = cfg
	return nil
}

func newHomepageService(repo *mockHomepageRepo) *HomepageService {
	return NewHomepageService(repo, nil, time.Minute, validator.New(), zap.NewNop(), nil)
}

func TestHomepageServiceGetFallsBackToDefaults(t *testing.T) {
	svc := newHomepageService(&mockHomepageRepo{})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Find Your Perfect", cfg.HeroTitle)
	assert.Equal(t, "College Match", cfg.HeroTitleHighlight)
	assert.Equal(t, "Search", cfg.CTAText)
	assert.Equal(t, 5000, cfg.SlideIntervalMS)
	assert.Equal(t, "Edu Dham", cfg.SiteName)
	assert.False(t, cfg.ShowFooter)
}

func TestHomepageServiceUpdateClampsSlideInterval(t *testing.T) {
	repo := &mockHomepageRepo{}
	svc := newHomepageService(repo)

	cfg, err := svc.Update(context.Background(), models.HomepageConfigInput{
		HeroTitle:       "Welcome",
		SiteName:        "Edu Dham",
		SlideIntervalMS: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MinSlideIntervalMS, cfg.SlideIntervalMS)
	require.NotNil(t, repo.stored)
	assert.Equal(t, models.HomepageConfigID, repo.stored.ID)
	assert.NotNil(t, repo.stored.HeroImages)
}

func TestHomepageServiceUpdateThenGet(t *testing.T) {
	repo := &mockHomepageRepo{}
	svc := newHomepageService(repo)

	_, err := svc.Update(context.Background(), models.HomepageConfigInput{
		HeroTitle:       "Discover",
		CTAText:         "Explore",
		SiteName:        "Campus Hub",
		LogoURL:         "/uploads/logo.png",
		SlideIntervalMS: 4000,
		ShowFooter:      true,
	})
	require.NoError(t, err)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Discover", cfg.HeroTitle)
	assert.Equal(t, "Explore", cfg.CTAText)
	assert.True(t, cfg.ShowFooter)

	branding, err := svc.Branding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Campus Hub", branding.SiteName)
	assert.Equal(t, "/uploads/logo.png", branding.LogoURL)
}
