package models

import "time"

// MinSlideIntervalMS is the floor applied to the hero rotation interval.
const MinSlideIntervalMS = 2000

// HomepageConfig is the singleton document driving the homepage hero and
// site-wide branding.
type HomepageConfig struct {
	ID                      string     `db:"id" json:"id"`
	HeroTitle               string     `db:"hero_title" json:"hero_title"`
	HeroTitleHighlight      string     `db:"hero_title_highlight" json:"hero_title_highlight"`
	HeroSubtitle            string     `db:"hero_subtitle" json:"hero_subtitle"`
	CTAText                 string     `db:"cta_text" json:"cta_text"`
	HeroImages              StringList `db:"hero_images" json:"hero_images"`
	SlideIntervalMS         int        `db:"slide_interval_ms" json:"slide_interval_ms"`
	SiteName                string     `db:"site_name" json:"site_name"`
	LogoURL                 string     `db:"logo_url" json:"logo_url"`
	HeroTitleColor          string     `db:"hero_title_color" json:"hero_title_color"`
	HeroTitleHighlightColor string     `db:"hero_title_highlight_color" json:"hero_title_highlight_color"`
	HeroSubtitleColor       string     `db:"hero_subtitle_color" json:"hero_subtitle_color"`
	ShowFooter              bool       `db:"show_footer" json:"show_footer"`
	UpdatedAt               time.Time  `db:"updated_at" json:"updated_at"`
}

// HomepageConfigID is the fixed key of the singleton row.
const HomepageConfigID = "homepage_config"

// DefaultHomepageConfig returns the configuration served before an admin has
// saved anything.
func DefaultHomepageConfig() HomepageConfig {
	return HomepageConfig{
		ID:                      HomepageConfigID,
		HeroTitle:               "Find Your Perfect",
		HeroTitleHighlight:      "College Match",
		HeroSubtitle:            "Discover and compare the best universities for your future",
		CTAText:                 "Search",
		HeroImages:              StringList{},
		SlideIntervalMS:         5000,
		SiteName:                "Edu Dham",
		LogoURL:                 "",
		HeroTitleColor:          "#ffffff",
		HeroTitleHighlightColor: "#f97316",
		HeroSubtitleColor:       "#cbd5e1",
		ShowFooter:              false,
	}
}

// HomepageConfigInput is the full-object PUT payload from the hero editor.
type HomepageConfigInput struct {
	HeroTitle               string     `json:"hero_title"`
	HeroTitleHighlight      string     `json:"hero_title_highlight"`
	HeroSubtitle            string     `json:"hero_subtitle"`
	CTAText                 string     `json:"cta_text"`
	HeroImages              StringList `json:"hero_images"`
	SlideIntervalMS         int        `json:"slide_interval_ms"`
	SiteName                string     `json:"site_name"`
	LogoURL                 string     `json:"logo_url"`
	HeroTitleColor          string     `json:"hero_title_color"`
	HeroTitleHighlightColor string     `json:"hero_title_highlight_color"`
	HeroSubtitleColor       string     `json:"hero_subtitle_color"`
	ShowFooter              bool       `json:"show_footer"`
}

// Branding is the subset of the homepage configuration cached client-side.
type Branding struct {
	SiteName string `json:"site_name"`
	LogoURL  string `json:"logo_url"`
}
