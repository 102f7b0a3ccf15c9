package models

import (
	"strings"
	"time"
)

// Course describes one programme offered by a university.
type Course struct {
	CourseName  string  `json:"course_name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Fees        float64 `json:"fees"`
	Category    string  `json:"category"`
}

// Blank reports whether every field of the course is empty or zero.
func (c Course) Blank() bool {
	return strings.TrimSpace(c.CourseName) == "" &&
		strings.TrimSpace(c.Description) == "" &&
		strings.TrimSpace(c.Duration) == "" &&
		c.Fees == 0 &&
		strings.TrimSpace(c.Category) == ""
}

// University is a directory listing with its courses and leads metadata.
//
// Older records carried a single `university_category` string; newer ones
// carry the plural list. Both fields survive on the wire so existing data
// keeps filtering correctly.
type University struct {
	ID                  string         `db:"id" json:"id"`
	Name                string         `db:"name" json:"name"`
	Location            string         `db:"location" json:"location"`
	State               string         `db:"state" json:"state"`
	Categories          StringList     `db:"categories" json:"university_categories"`
	LegacyCategory      string         `db:"legacy_category" json:"university_category,omitempty"`
	MainPhoto           string         `db:"main_photo" json:"main_photo"`
	PhotoGallery        StringList     `db:"photo_gallery" json:"photo_gallery"`
	Description         string         `db:"description" json:"description"`
	Courses             CourseList     `db:"courses" json:"courses"`
	PlacementPercentage float64        `db:"placement_percentage" json:"placement_percentage"`
	Rating              float64        `db:"rating" json:"rating"`
	Tags                StringList     `db:"tags" json:"tags"`
	ContactDetails      ContactDetails `db:"contact_details" json:"contact_details"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
}

// CategoryList returns the normalized category facet: the plural list when
// present, otherwise the legacy singular value as a one-element list.
func (u *University) CategoryList() []string {
	if len(u.Categories) > 0 {
		return u.Categories
	}
	if strings.TrimSpace(u.LegacyCategory) != "" {
		return []string{u.LegacyCategory}
	}
	return nil
}

// UniversityInput is the create/update payload. Updates replace the whole
// document, mirroring the editor's save semantics.
type UniversityInput struct {
	Name                string         `json:"name" validate:"required"`
	Location            string         `json:"location" validate:"required"`
	State               string         `json:"state"`
	Categories          StringList     `json:"university_categories"`
	MainPhoto           string         `json:"main_photo"`
	PhotoGallery        StringList     `json:"photo_gallery"`
	Description         string         `json:"description"`
	Courses             CourseList     `json:"courses"`
	PlacementPercentage float64        `json:"placement_percentage" validate:"gte=0,lte=100"`
	Rating              float64        `json:"rating" validate:"gte=0,lte=5"`
	Tags                StringList     `json:"tags"`
	ContactDetails      ContactDetails `json:"contact_details"`
}

// FilterOptions is the vocabulary backing the listing screen's dropdowns.
type FilterOptions struct {
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
}

// BulkImportResult summarises one bulk Excel upload.
type BulkImportResult struct {
	Message      string   `json:"message"`
	CreatedCount int      `json:"created_count"`
	Created      []string `json:"created"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}
