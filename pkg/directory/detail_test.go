package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
)

func TestCoursesByCategoryGroupsInFirstAppearanceOrder(t *testing.T) {
	u := &models.University{Courses: models.CourseList{
		{CourseName: "B.Tech", Category: "Engineering"},
		{CourseName: "MBA", Category: "Management"},
		{CourseName: "M.Tech", Category: "Engineering"},
		{CourseName: "Cert", Category: ""},
	}}

	groups := CoursesByCategory(u)
	require.Len(t, groups, 3)
	assert.Equal(t, "Engineering", groups[0].Category)
	assert.Len(t, groups[0].Courses, 2)
	assert.Equal(t, "Management", groups[1].Category)
	assert.Equal(t, "Uncategorized", groups[2].Category)
}

func TestCoursesByCategoryNoCourses(t *testing.T) {
	assert.Empty(t, CoursesByCategory(&models.University{}))
}

func TestGalleryImagesMainPhotoFirst(t *testing.T) {
	u := &models.University{
		MainPhoto:    "/uploads/main.png",
		PhotoGallery: models.StringList{"/uploads/a.png", "/uploads/main.png", "", "/uploads/b.png"},
	}

	assert.Equal(t, []string{"/uploads/main.png", "/uploads/a.png", "/uploads/b.png"}, GalleryImages(u))
}

func TestGalleryImagesNoMainPhoto(t *testing.T) {
	u := &models.University{PhotoGallery: models.StringList{"/uploads/a.png"}}
	assert.Equal(t, []string{"/uploads/a.png"}, GalleryImages(u))
}
