package editor

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/edudham/edudham-api/internal/models"
)

// previewRotationInterval is the fixed cadence of the editor's preview
// carousel. The configured slide interval only applies to the live
// homepage, never to the preview.
const previewRotationInterval = 2500 * time.Millisecond

// HomepageSaver persists the full homepage configuration in one call.
type HomepageSaver interface {
	UpdateHomepage(ctx context.Context, input models.HomepageConfigInput) (*models.HomepageConfig, error)
}

// HeroEditor drives the homepage configuration form. The draft starts
// from the hard-coded defaults with the server's saved values layered
// on top, so a half-saved document still renders a complete form.
type HeroEditor struct {
	mu           sync.Mutex
	draft        models.HomepageConfig
	previewIndex int
	stopPreview  chan struct{}
	saver        HomepageSaver
}

// NewHeroEditor builds the editor. saved may be nil when the server has
// no configuration yet.
func NewHeroEditor(saved *models.HomepageConfig, saver HomepageSaver) *HeroEditor {
	return &HeroEditor{
		draft: mergeOverDefaults(saved),
		saver: saver,
	}
}

func mergeOverDefaults(saved *models.HomepageConfig) models.HomepageConfig {
	draft := models.DefaultHomepageConfig()
	if saved == nil {
		return draft
	}
	if saved.HeroTitle != "" {
		draft.HeroTitle = saved.HeroTitle
	}
	if saved.HeroTitleHighlight != "" {
		draft.HeroTitleHighlight = saved.HeroTitleHighlight
	}
	if saved.HeroSubtitle != "" {
		draft.HeroSubtitle = saved.HeroSubtitle
	}
	if saved.CTAText != "" {
		draft.CTAText = saved.CTAText
	}
	if saved.HeroImages != nil {
		draft.HeroImages = append(models.StringList{}, saved.HeroImages...)
	}
	if saved.SlideIntervalMS > 0 {
		draft.SlideIntervalMS = saved.SlideIntervalMS
	}
	if saved.SiteName != "" {
		draft.SiteName = saved.SiteName
	}
	if saved.LogoURL != "" {
		draft.LogoURL = saved.LogoURL
	}
	if saved.HeroTitleColor != "" {
		draft.HeroTitleColor = saved.HeroTitleColor
	}
	if saved.HeroTitleHighlightColor != "" {
		draft.HeroTitleHighlightColor = saved.HeroTitleHighlightColor
	}
	if saved.HeroSubtitleColor != "" {
		draft.HeroSubtitleColor = saved.HeroSubtitleColor
	}
	draft.ShowFooter = saved.ShowFooter
	return draft
}

// Draft returns a copy of the current form state.
func (e *HeroEditor) Draft() models.HomepageConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft := e.draft
	draft.HeroImages = append(models.StringList{}, e.draft.HeroImages...)
	return draft
}

// SetField applies one text edit to the draft.
func (e *HeroEditor) SetField(apply func(*models.HomepageConfig)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	apply(&e.draft)
}

// SetHeroImages replaces the hero image list.
func (e *HeroEditor) SetHeroImages(urls []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.HeroImages = append(models.StringList{}, urls...)
}

// SetSlideIntervalSeconds parses the interval field, entered in
// seconds, and stores it in milliseconds with the configured floor
// applied. Unparseable input leaves the draft unchanged.
func (e *HeroEditor) SetSlideIntervalSeconds(text string) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return
	}
	ms := int(seconds * 1000)
	if ms < models.MinSlideIntervalMS {
		ms = models.MinSlideIntervalMS
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.SlideIntervalMS = ms
}

// PreviewIndex returns the hero image currently showing in the preview.
func (e *HeroEditor) PreviewIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.previewIndex
}

// AdvancePreview steps the preview carousel to the next image.
func (e *HeroEditor) AdvancePreview() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := len(e.draft.HeroImages); n > 0 {
		e.previewIndex = (e.previewIndex + 1) % n
	}
}

// StartPreview begins the preview rotation at its fixed cadence. Calling
// it while a rotation is already running is a no-op.
func (e *HeroEditor) StartPreview() {
	e.mu.Lock()
	if e.stopPreview != nil {
		e.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	e.stopPreview = stop
	e.mu.Unlock()

	go func() {
		ticker := time.NewTicker(previewRotationInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.AdvancePreview()
			case <-stop:
				return
			}
		}
	}()
}

// Save persists the whole draft in one update and replaces the draft
// with what the server stored.
func (e *HeroEditor) Save(ctx context.Context) (*models.HomepageConfig, error) {
	draft := e.Draft()
	interval := draft.SlideIntervalMS
	if interval < models.MinSlideIntervalMS {
		interval = models.MinSlideIntervalMS
	}

	saved, err := e.saver.UpdateHomepage(ctx, models.HomepageConfigInput{
		HeroTitle:               draft.HeroTitle,
		HeroTitleHighlight:      draft.HeroTitleHighlight,
		HeroSubtitle:            draft.HeroSubtitle,
		CTAText:                 draft.CTAText,
		HeroImages:              draft.HeroImages,
		SlideIntervalMS:         interval,
		SiteName:                draft.SiteName,
		LogoURL:                 draft.LogoURL,
		HeroTitleColor:          draft.HeroTitleColor,
		HeroTitleHighlightColor: draft.HeroTitleHighlightColor,
		HeroSubtitleColor:       draft.HeroSubtitleColor,
		ShowFooter:              draft.ShowFooter,
	})
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.draft = mergeOverDefaults(saved)
	e.mu.Unlock()
	return saved, nil
}

// Close stops the preview rotation. The editor must not be reused after
// closing.
func (e *HeroEditor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopPreview != nil {
		close(e.stopPreview)
		e.stopPreview = nil
	}
}
