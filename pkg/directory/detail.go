package directory

import (
	"strings"

	"github.com/edudham/edudham-api/internal/models"
)

// CourseGroup is one category section on the detail screen.
type CourseGroup struct {
	Category string
	Courses  []models.Course
}

// CoursesByCategory groups a university's courses for display, keeping
// categories in first-appearance order. Courses without a category land
// under "Uncategorized".
func CoursesByCategory(u *models.University) []CourseGroup {
	index := make(map[string]int)
	var groups []CourseGroup
	for _, course := range u.Courses {
		category := strings.TrimSpace(course.Category)
		if category == "" {
			category = "Uncategorized"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CourseGroup{Category: category})
		}
		groups[i].Courses = append(groups[i].Courses, course)
	}
	return groups
}

// GalleryImages returns the detail screen's image strip: the main photo
// first, then the gallery, with blanks and duplicates dropped.
func GalleryImages(u *models.University) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(url string) {
		url = strings.TrimSpace(url)
		if url == "" {
			return
		}
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}

	add(u.MainPhoto)
	for _, url := range u.PhotoGallery {
		add(url)
	}
	return out
}
