package client

import (
	"context"
	"encoding/json"

	"github.com/edudham/edudham-api/internal/models"
)

const brandingCacheKey = "edudham.branding"

// brandingFetcher is the slice of Client the store needs.
type brandingFetcher interface {
	Branding(ctx context.Context) (*models.Branding, error)
}

// BrandingStore serves the site name and logo without blocking on the
// network. It answers from the last cached value (or built-in defaults)
// and overwrites the cache whenever a refresh succeeds. A failed
// refresh keeps whatever was already showing.
type BrandingStore struct {
	kv      KV
	fetcher brandingFetcher
}

// NewBrandingStore builds a branding store over the given KV and fetcher.
func NewBrandingStore(kv KV, fetcher brandingFetcher) *BrandingStore {
	return &BrandingStore{kv: kv, fetcher: fetcher}
}

// Current returns the cached branding, falling back to the defaults
// when nothing has been cached yet or the cache is unreadable.
func (b *BrandingStore) Current() models.Branding {
	raw, ok := b.kv.Get(brandingCacheKey)
	if !ok {
		return defaultBranding()
	}
	var branding models.Branding
	if err := json.Unmarshal([]byte(raw), &branding); err != nil {
		return defaultBranding()
	}
	return branding
}

// Refresh fetches the branding and overwrites the cache on success. On
// failure it returns the current value unchanged.
func (b *BrandingStore) Refresh(ctx context.Context) models.Branding {
	fetched, err := b.fetcher.Branding(ctx)
	if err != nil || fetched == nil {
		return b.Current()
	}
	if raw, err := json.Marshal(fetched); err == nil {
		_ = b.kv.Set(brandingCacheKey, string(raw))
	}
	return *fetched
}

func defaultBranding() models.Branding {
	return models.Branding{SiteName: "Edu Dham", LogoURL: ""}
}
