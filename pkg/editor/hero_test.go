package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

type homepageSaverStub struct {
	lastInput *models.HomepageConfigInput
	err       error
}

func (s *homepageSaverStub) UpdateHomepage(ctx context.Context, input models.HomepageConfigInput) (*models.HomepageConfig, error) {
	s.lastInput = &input
	if s.err != nil {
		return nil, s.err
	}
	cfg := models.HomepageConfig{
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
	return &cfg, nil
}

func TestHeroEditorDraftMergesServerOverDefaults(t *testing.T) {
	saved := &models.HomepageConfig{
		HeroTitle:  "Welcome to",
		CTAText:    "Explore",
		SiteName:   "Campus Hub",
		ShowFooter: true,
	}
	e := NewHeroEditor(saved, nil)
	draft := e.Draft()

	assert.Equal(t, "Welcome to", draft.HeroTitle)
	assert.Equal(t, "Explore", draft.CTAText)
	assert.Equal(t, "Campus Hub", draft.SiteName)
	assert.True(t, draft.ShowFooter)

	// Fields the server never saved keep the defaults.
	assert.Equal(t, "College Match", draft.HeroTitleHighlight)
	assert.Equal(t, 5000, draft.SlideIntervalMS)
	assert.Equal(t, "#f97316", draft.HeroTitleHighlightColor)
}

func TestHeroEditorNilServerConfigUsesDefaults(t *testing.T) {
	e := NewHeroEditor(nil, nil)
	assert.Equal(t, models.DefaultHomepageConfig(), e.Draft())
}

func TestHeroEditorSetSlideIntervalSeconds(t *testing.T) {
	e := NewHeroEditor(nil, nil)

	e.SetSlideIntervalSeconds("3")
	assert.Equal(t, 3000, e.Draft().SlideIntervalMS)

	e.SetSlideIntervalSeconds("1.5")
	assert.Equal(t, models.MinSlideIntervalMS, e.Draft().SlideIntervalMS)

	e.SetSlideIntervalSeconds("fast")
	assert.Equal(t, models.MinSlideIntervalMS, e.Draft().SlideIntervalMS)
}

func TestHeroEditorPreviewAdvancesThroughImages(t *testing.T) {
	e := NewHeroEditor(&models.HomepageConfig{
		HeroImages: models.StringList{"a.png", "b.png", "c.png"},
	}, nil)

	require.Zero(t, e.PreviewIndex())
	e.AdvancePreview()
	assert.Equal(t, 1, e.PreviewIndex())
	e.AdvancePreview()
	e.AdvancePreview()
	assert.Zero(t, e.PreviewIndex(), "preview wraps around")
}

func TestHeroEditorPreviewNoImages(t *testing.T) {
	e := NewHeroEditor(nil, nil)
	e.AdvancePreview()
	assert.Zero(t, e.PreviewIndex())
}

func TestHeroEditorSaveSendsFullDocument(t *testing.T) {
	saver := &homepageSaverStub{}
	e := NewHeroEditor(&models.HomepageConfig{SiteName: "Campus Hub"}, saver)
	e.SetField(func(cfg *models.HomepageConfig) { cfg.HeroTitle = "Welcome" })
	e.SetHeroImages([]string{"a.png"})

	saved, err := e.Save(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saver.lastInput)

	assert.Equal(t, "Welcome", saver.lastInput.HeroTitle)
	assert.Equal(t, "Campus Hub", saver.lastInput.SiteName)
	assert.Equal(t, models.StringList{"a.png"}, saver.lastInput.HeroImages)
	// Untouched fields ride along with their default values.
	assert.Equal(t, "College Match", saver.lastInput.HeroTitleHighlight)
	assert.Equal(t, "Search", saver.lastInput.CTAText)
	assert.Equal(t, 5000, saver.lastInput.SlideIntervalMS)
	assert.Equal(t, "Welcome", saved.HeroTitle)
}

func TestHeroEditorSaveClampsInterval(t *testing.T) {
	saver := &homepageSaverStub{}
	e := NewHeroEditor(nil, saver)
	e.SetField(func(cfg *models.HomepageConfig) { cfg.SlideIntervalMS = 500 })

	_, err := e.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.MinSlideIntervalMS, saver.lastInput.SlideIntervalMS)
}

func TestHeroEditorStartPreviewAndClose(t *testing.T) {
	e := NewHeroEditor(&models.HomepageConfig{
		HeroImages: models.StringList{"a.png", "b.png"},
	}, nil)

	e.StartPreview()
	e.StartPreview() // second start is a no-op
	e.Close()
	e.Close() // closing twice is safe

	idx := e.PreviewIndex()
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 2)
}
