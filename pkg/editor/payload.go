package editor

import (
	"strconv"
	"strings"

	"github.com/edudham/edudham-api/internal/models"
)

// UniversityDraft is the full form state of the university editor,
// gathered from the individual widgets just before saving.
type UniversityDraft struct {
	Name                string
	Location            string
	State               string
	Description         string
	MainPhoto           string
	PhotoGallery        []string
	Categories          []string
	Tags                []string
	Courses             []CourseRow
	PlacementPercentage float64
	Rating              float64
	Contact             models.ContactDetails
}

// BuildSavePayload assembles the whole-document update from the draft.
// Categories that were attached to courses in the previous snapshot are
// stripped from both the tag list and the category list, then the
// categories of the current course rows are unioned back in. That keeps
// both lists tracking course edits without clobbering hand-added
// entries. All-blank course rows are dropped and textual fees are
// coerced to numbers, with unparseable input becoming zero.
func BuildSavePayload(draft UniversityDraft, previous *models.University) models.UniversityInput {
	previousCourseCategories := make(map[string]struct{})
	if previous != nil {
		for _, course := range previous.Courses {
			if cat := strings.TrimSpace(course.Category); cat != "" {
				previousCourseCategories[cat] = struct{}{}
			}
		}
	}

	tags := stripCategories(draft.Tags, previousCourseCategories)
	categories := stripCategories(draft.Categories, previousCourseCategories)

	courses := make(models.CourseList, 0, len(draft.Courses))
	for _, row := range draft.Courses {
		if rowBlank(row) {
			continue
		}
		courses = append(courses, models.Course{
			CourseName:  strings.TrimSpace(row.CourseName),
			Description: strings.TrimSpace(row.Description),
			Duration:    strings.TrimSpace(row.Duration),
			Fees:        coerceFee(row.FeesText),
			Category:    strings.TrimSpace(row.Category),
		})
	}

	for _, course := range courses {
		if course.Category == "" {
			continue
		}
		tags = unionAppend(tags, course.Category)
		categories = unionAppend(categories, course.Category)
	}

	return models.UniversityInput{
		Name:                strings.TrimSpace(draft.Name),
		Location:            strings.TrimSpace(draft.Location),
		State:               strings.TrimSpace(draft.State),
		Categories:          categories,
		MainPhoto:           strings.TrimSpace(draft.MainPhoto),
		PhotoGallery:        append(models.StringList{}, draft.PhotoGallery...),
		Description:         strings.TrimSpace(draft.Description),
		Courses:             courses,
		PlacementPercentage: draft.PlacementPercentage,
		Rating:              draft.Rating,
		Tags:                tags,
		ContactDetails:      draft.Contact,
	}
}

func stripCategories(values []string, drop map[string]struct{}) models.StringList {
	out := make(models.StringList, 0, len(values))
	for _, v := range values {
		if _, gone := drop[v]; gone {
			continue
		}
		out = append(out, v)
	}
	return out
}

func unionAppend(values models.StringList, v string) models.StringList {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}

func rowBlank(row CourseRow) bool {
	return strings.TrimSpace(row.CourseName) == "" &&
		strings.TrimSpace(row.Description) == "" &&
		strings.TrimSpace(row.Duration) == "" &&
		strings.TrimSpace(row.FeesText) == "" &&
		strings.TrimSpace(row.Category) == ""
}

func coerceFee(text string) float64 {
	fee, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return fee
}
