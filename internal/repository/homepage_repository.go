package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edudham/edudham-api/internal/models"
)

// HomepageRepository stores the singleton homepage configuration row.
type HomepageRepository struct {
	db *sqlx.DB
}

// NewHomepageRepository creates a new instance of HomepageRepository.
func NewHomepageRepository(db *sqlx.DB) *HomepageRepository {
	return &HomepageRepository{db: db}
}

// Get returns the stored configuration. Callers fall back to defaults on
// sql.ErrNoRows.
func (r *HomepageRepository) Get(ctx context.Context) (*models.HomepageConfig, error) {
	const query = `SELECT id, hero_title, hero_title_highlight, hero_subtitle, cta_text, hero_images, slide_interval_ms, site_name, logo_url, hero_title_color, hero_title_highlight_color, hero_subtitle_color, show_footer, updated_at FROM homepage_config WHERE id = $1 LIMIT 1`
	var cfg models.HomepageConfig
	if err := r.db.GetContext(ctx, &cfg, query, models.HomepageConfigID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get homepage config: %w", err)
	}
	return &cfg, nil
}

// Upsert writes the full configuration document.
func (r *HomepageRepository) Upsert(ctx context.Context, cfg *models.HomepageConfig) error {
	cfg.ID = models.HomepageConfigID
	cfg.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO homepage_config (id, hero_title, hero_title_highlight, hero_subtitle, cta_text, hero_images, slide_interval_ms, site_name, logo_url, hero_title_color, hero_title_highlight_color, hero_subtitle_color, show_footer, updated_at)
		VALUES (:id, :hero_title, :hero_title_highlight, :hero_subtitle, :cta_text, :hero_images, :slide_interval_ms, :site_name, :logo_url, :hero_title_color, :hero_title_highlight_color, :hero_subtitle_color, :show_footer, :updated_at)
		ON CONFLICT (id) DO UPDATE SET hero_title = EXCLUDED.hero_title, hero_title_highlight = EXCLUDED.hero_title_highlight, hero_subtitle = EXCLUDED.hero_subtitle, cta_text = EXCLUDED.cta_text, hero_images = EXCLUDED.hero_images, slide_interval_ms = EXCLUDED.slide_interval_ms, site_name = EXCLUDED.site_name, logo_url = EXCLUDED.logo_url, hero_title_color = EXCLUDED.hero_title_color, hero_title_highlight_color = EXCLUDED.hero_title_highlight_color, hero_subtitle_color = EXCLUDED.hero_subtitle_color, show_footer = EXCLUDED.show_footer, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, cfg); err != nil {
		return fmt.Errorf("upsert homepage config: %w", err)
	}
	return nil
}
