package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/models"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

type homepageRepository interface {
	Get(ctx context.Context) (*models.HomepageConfig, error)
	Upsert(ctx context.Context, cfg *models.HomepageConfig) error
}

const homepageCacheKey = "homepage:config"

// HomepageService owns the singleton homepage configuration. Reads go
// through an optional Redis cache; a PUT invalidates it so the change is
// visible to the very next read.
type HomepageService struct {
	repo      homepageRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewHomepageService creates an instance of HomepageService. The cache
// client may be nil.
func NewHomepageService(repo homepageRepository, cache *redis.Client, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *HomepageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &HomepageService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger, metrics: metrics}
}

// Get returns the stored configuration, falling back to defaults when no
// admin has saved anything yet.
func (s *HomepageService) Get(ctx context.Context) (*models.HomepageConfig, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			defaults := models.DefaultHomepageConfig()
			return &defaults, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homepage config")
	}

	s.toCache(ctx, cfg)
	return cfg, nil
}

// Update replaces the whole configuration document. The slide interval is
// clamped to the minimum before storage.
func (s *HomepageService) Update(ctx context.Context, input models.HomepageConfigInput) (*models.HomepageConfig, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid homepage config payload")
	}

	cfg := &models.HomepageConfig{
		ID:                      models.HomepageConfigID,
		HeroTitle:               input.HeroTitle,
		HeroTitleHighlight:      input.HeroTitleHighlight,
		HeroSubtitle:            input.HeroSubtitle,
		CTAText:                 input.CTAText,
		HeroImages:              input.HeroImages,
		SlideIntervalMS:         input.SlideIntervalMS,
		SiteName:                input.SiteName,
		LogoURL:                 input.LogoURL,
		HeroTitleColor:          input.HeroTitleColor,
		HeroTitleHighlightColor: input.HeroTitleHighlightColor,
		HeroSubtitleColor:       input.HeroSubtitleColor,
		ShowFooter:              input.ShowFooter,
	}
	if cfg.HeroImages == nil {
		cfg.HeroImages = models.StringList{}
	}
	if cfg.SlideIntervalMS < models.MinSlideIntervalMS {
		cfg.SlideIntervalMS = models.MinSlideIntervalMS
	}

	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save homepage config")
	}

	s.invalidate(ctx)
	return cfg, nil
}

// Branding returns the cached subset used for the site chrome.
func (s *HomepageService) Branding(ctx context.Context) (*models.Branding, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Branding{SiteName: cfg.SiteName, LogoURL: cfg.LogoURL}, nil
}

func (s *HomepageService) fromCache(ctx context.Context) *models.HomepageConfig {
	if s.cache == nil {
		return nil
	}
	start := time.Now()
	raw, err := s.cache.Get(ctx, homepageCacheKey).Bytes()
	hit := err == nil
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(hit, time.Since(start))
	}
	if !hit {
		return nil
	}
	var cfg models.HomepageConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		s.logger.Warn("corrupt homepage cache entry", zap.Error(err))
		return nil
	}
	return &cfg
}

func (s *HomepageService) toCache(ctx context.Context, cfg *models.HomepageConfig) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	start := time.Now()
	if err := s.cache.Set(ctx, homepageCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache homepage config", zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.ObserveCacheWrite(time.Since(start))
	}
}

func (s *HomepageService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, homepageCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate homepage cache", zap.Error(err))
	}
}
