package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

type brandingFetcherStub struct {
	branding *models.Branding
	err      error
}

func (f *brandingFetcherStub) Branding(ctx context.Context) (*models.Branding, error) {
	return f.branding, f.err
}

func TestBrandingStoreDefaultsBeforeFirstFetch(t *testing.T) {
	store := NewBrandingStore(NewMemoryKV(), &brandingFetcherStub{})
	branding := store.Current()
	assert.Equal(t, "Edu Dham", branding.SiteName)
	assert.Empty(t, branding.LogoURL)
}

func TestBrandingStoreRefreshOverwritesCache(t *testing.T) {
	fetcher := &brandingFetcherStub{branding: &models.Branding{SiteName: "Campus Hub", LogoURL: "/uploads/logo.png"}}
	kv := NewMemoryKV()
	store := NewBrandingStore(kv, fetcher)

	branding := store.Refresh(context.Background())
	assert.Equal(t, "Campus Hub", branding.SiteName)
	assert.Equal(t, "Campus Hub", store.Current().SiteName)

	fetcher.branding = &models.Branding{SiteName: "Renamed", LogoURL: ""}
	branding = store.Refresh(context.Background())
	assert.Equal(t, "Renamed", branding.SiteName)
	assert.Equal(t, "Renamed", store.Current().SiteName)
}

func TestBrandingStoreKeepsCacheOnFetchFailure(t *testing.T) {
	fetcher := &brandingFetcherStub{branding: &models.Branding{SiteName: "Campus Hub"}}
	store := NewBrandingStore(NewMemoryKV(), fetcher)
	require.Equal(t, "Campus Hub", store.Refresh(context.Background()).SiteName)

	fetcher.branding = nil
	fetcher.err = errors.New("network down")
	branding := store.Refresh(context.Background())
	assert.Equal(t, "Campus Hub", branding.SiteName, "a failed refresh keeps the cached value")
}

func TestBrandingStoreUnreadableCacheFallsBack(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(brandingCacheKey, "{not json"))
	store := NewBrandingStore(kv, &brandingFetcherStub{})
	assert.Equal(t, "Edu Dham", store.Current().SiteName)
}
