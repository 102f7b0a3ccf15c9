package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/editor"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

var errMissingRequired = appErrors.Clone(appErrors.ErrValidation, "name and location are required")

// UniversityGateway is the slice of the API client the details form needs.
type UniversityGateway interface {
	CreateUniversity(ctx context.Context, input models.UniversityInput) (*models.University, error)
	UpdateUniversity(ctx context.Context, id string, input models.UniversityInput) (*models.University, error)
}

// UniversityForm composes the editable widgets of the university
// details screen and assembles their values into one whole-document
// save. The snapshot loaded into the form is kept aside so the save can
// reconcile course-category changes against what the server last saw.
type UniversityForm struct {
	gateway  UniversityGateway
	previous *models.University

	Name                string
	Location            string
	State               string
	Description         string
	MainPhoto           string
	PlacementPercentage float64
	Rating              float64

	Categories *editor.MultiSelect
	Gallery    *editor.ImageList
	Courses    *editor.CourseEditor
	Tags       *editor.TagEditor
	Contact    *editor.ContactEditor

	saving bool
}

// NewUniversityForm builds the form. existing is nil when creating a
// new listing. categoryOptions feeds both the category multi-select and
// the course editor; when empty the course editor falls back to a
// single fetch through fetcher.
func NewUniversityForm(gateway UniversityGateway, existing *models.University, categoryOptions []string, fetcher editor.CategoryFetcher) *UniversityForm {
	form := &UniversityForm{gateway: gateway, previous: existing}

	var (
		selected []string
		gallery  []string
		tags     []string
		rows     []editor.CourseRow
		contact  models.ContactDetails
	)
	if existing != nil {
		form.Name = existing.Name
		form.Location = existing.Location
		form.State = existing.State
		form.Description = existing.Description
		form.MainPhoto = existing.MainPhoto
		form.PlacementPercentage = existing.PlacementPercentage
		form.Rating = existing.Rating
		selected = existing.CategoryList()
		gallery = existing.PhotoGallery
		tags = existing.Tags
		contact = existing.ContactDetails
		rows = courseRows(existing.Courses)
	}

	form.Categories = editor.NewMultiSelect(categoryOptions, selected, nil)
	form.Gallery = editor.NewImageList(gallery, nil)
	form.Courses = editor.NewCourseEditor(rows, categoryOptions, fetcher, nil)
	form.Tags = editor.NewTagEditor(tags, nil)
	form.Contact = editor.NewContactEditor(contact, nil)
	return form
}

func courseRows(courses models.CourseList) []editor.CourseRow {
	rows := make([]editor.CourseRow, 0, len(courses))
	for _, course := range courses {
		fees := ""
		if course.Fees != 0 {
			fees = strconv.FormatFloat(course.Fees, 'f', -1, 64)
		}
		rows = append(rows, editor.CourseRow{
			CourseName:  course.CourseName,
			Description: course.Description,
			Duration:    course.Duration,
			FeesText:    fees,
			Category:    course.Category,
		})
	}
	return rows
}

// Saving reports whether a save round-trip is in flight.
func (f *UniversityForm) Saving() bool {
	return f.saving
}

// Payload assembles the whole-document update from the form's current
// state without sending it.
func (f *UniversityForm) Payload() models.UniversityInput {
	return editor.BuildSavePayload(editor.UniversityDraft{
		Name:                f.Name,
		Location:            f.Location,
		State:               f.State,
		Description:         f.Description,
		MainPhoto:           f.MainPhoto,
		PhotoGallery:        f.Gallery.URLs(),
		Categories:          f.Categories.Selected(),
		Tags:                f.Tags.Tags(),
		Courses:             f.Courses.Rows(),
		PlacementPercentage: f.PlacementPercentage,
		Rating:              f.Rating,
		Contact:             f.Contact.Details(),
	}, f.previous)
}

// Save sends the assembled document in one round-trip, creating the
// listing when the form has no snapshot and replacing it otherwise. On
// success the saved document becomes the new snapshot.
func (f *UniversityForm) Save(ctx context.Context) (*models.University, error) {
	payload := f.Payload()
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Location) == "" {
		return nil, errMissingRequired
	}

	f.saving = true
	defer func() { f.saving = false }()

	var (
		saved *models.University
		err   error
	)
	if f.previous == nil || f.previous.ID == "" {
		saved, err = f.gateway.CreateUniversity(ctx, payload)
	} else {
		saved, err = f.gateway.UpdateUniversity(ctx, f.previous.ID, payload)
	}
	if err != nil {
		return nil, err
	}
	f.previous = saved
	return saved, nil
}
