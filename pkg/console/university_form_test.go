package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/editor"
)

type universityGatewayStub struct {
	created   *models.UniversityInput
	updated   *models.UniversityInput
	updatedID string
}

func (g *universityGatewayStub) CreateUniversity(ctx context.Context, input models.UniversityInput) (*models.University, error) {
	g.created = &input
	return &models.University{ID: "new-id", Name: input.Name, Courses: input.Courses, Tags: input.Tags, Categories: input.Categories}, nil
}

func (g *universityGatewayStub) UpdateUniversity(ctx context.Context, id string, input models.UniversityInput) (*models.University, error) {
	g.updated = &input
	g.updatedID = id
	return &models.University{ID: id, Name: input.Name, Courses: input.Courses, Tags: input.Tags, Categories: input.Categories}, nil
}

func existingUniversity() *models.University {
	return &models.University{
		ID:         "u1",
		Name:       "IIT Kanpur",
		Location:   "Kanpur",
		Tags:       models.StringList{"Engineering", "Scholarship"},
		Categories: models.StringList{"Engineering"},
		Courses: models.CourseList{
			{CourseName: "B.Tech", Fees: 150000, Category: "Engineering"},
		},
	}
}

func TestUniversityFormSaveReconcilesCourseCategories(t *testing.T) {
	gw := &universityGatewayStub{}
	form := NewUniversityForm(gw, existingUniversity(), []string{"Engineering", "Medicine"}, nil)

	// Replace the engineering course with a medicine one.
	form.Courses.RemoveRow(0)
	form.Courses.AddRow()
	form.Courses.UpdateRow(0, editor.CoursePatch{
		CourseName: strPtr("MBBS"),
		FeesText:   strPtr("200000"),
		Category:   strPtr("Medicine"),
	})

	saved, err := form.Save(context.Background())
	require.NoError(t, err)
	require.NotNil(t, gw.updated)
	assert.Equal(t, "u1", gw.updatedID)

	assert.Equal(t, models.StringList{"Scholarship", "Medicine"}, gw.updated.Tags)
	assert.Equal(t, models.StringList{"Medicine"}, gw.updated.Categories)
	require.Len(t, gw.updated.Courses, 1)
	assert.Equal(t, 200000.0, gw.updated.Courses[0].Fees)
	assert.Equal(t, "u1", saved.ID)
}

func TestUniversityFormSecondSaveUsesFreshSnapshot(t *testing.T) {
	gw := &universityGatewayStub{}
	form := NewUniversityForm(gw, existingUniversity(), nil, nil)

	_, err := form.Save(context.Background())
	require.NoError(t, err)

	// The first save left "Engineering" as a course category in the new
	// snapshot. Dropping the course now strips it from both lists.
	form.Courses.RemoveRow(0)
	_, err = form.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.StringList{"Scholarship"}, gw.updated.Tags)
	assert.Empty(t, gw.updated.Categories)
}

func TestUniversityFormCreateWhenNoSnapshot(t *testing.T) {
	gw := &universityGatewayStub{}
	form := NewUniversityForm(gw, nil, []string{"Engineering"}, nil)
	form.Name = "Lucknow Business School"
	form.Location = "Lucknow"
	form.Tags.Add("MBA")

	saved, err := form.Save(context.Background())
	require.NoError(t, err)
	require.NotNil(t, gw.created)
	assert.Nil(t, gw.updated)
	assert.Equal(t, "new-id", saved.ID)
	assert.Equal(t, models.StringList{"MBA"}, gw.created.Tags)

	// The created document becomes the snapshot; the next save updates.
	form.Description = "AICTE approved"
	_, err = form.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-id", gw.updatedID)
}

func TestUniversityFormRequiresNameAndLocation(t *testing.T) {
	form := NewUniversityForm(&universityGatewayStub{}, nil, nil, nil)
	form.Name = "   "
	form.Location = "Kanpur"

	_, err := form.Save(context.Background())
	require.Error(t, err)
	assert.False(t, form.Saving())
}

func TestUniversityFormSeedsWidgetsFromSnapshot(t *testing.T) {
	u := existingUniversity()
	u.PhotoGallery = models.StringList{"/uploads/a.png"}
	u.ContactDetails = models.ContactDetails{Email: "info@iitk.ac.in"}
	form := NewUniversityForm(&universityGatewayStub{}, u, []string{"Engineering"}, nil)

	assert.Equal(t, []string{"Engineering"}, form.Categories.Selected())
	assert.Equal(t, []string{"/uploads/a.png"}, form.Gallery.URLs())
	assert.Equal(t, []string{"Engineering", "Scholarship"}, form.Tags.Tags())
	assert.Equal(t, "info@iitk.ac.in", form.Contact.Details().Email)

	rows := form.Courses.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "150000", rows[0].FeesText)
}

func TestUniversityFormLegacyCategorySeedsSelection(t *testing.T) {
	u := &models.University{
		ID:             "u2",
		Name:           "Lucknow Business School",
		Location:       "Lucknow",
		LegacyCategory: "Management & Commerce",
	}
	form := NewUniversityForm(&universityGatewayStub{}, u, nil, nil)
	assert.Equal(t, []string{"Management & Commerce"}, form.Categories.Selected())
}

func strPtr(s string) *string { return &s }
