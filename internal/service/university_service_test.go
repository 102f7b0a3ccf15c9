package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/directory"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

type mockUniversityRepo struct {
	universities []models.University
	created      []*models.University
	updated      []*models.University
	deletedIDs   []string
	listErr      error
	createErr    error
}

func (m *mockUniversityRepo) List(ctx context.Context) ([]models.University, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.universities, nil
}

func (m *mockUniversityRepo) FindByID(ctx context.Context, id string) (*models.University, error) {
	for i := range m.universities {
		if m.universities[i].ID == id {
			u := m.universities[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUniversityRepo) Create(ctx context.Context, u *models.University) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockUniversityRepo) Update(ctx context.Context, u *models.University) error {
	m.updated = append(m.updated, u)
	return nil
}

func (m *mockUniversityRepo) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockUniversityRepo) Count(ctx context.Context) (int, error) {
	return len(m.universities), nil
}

type mockCategoryLister struct {
	categories []models.Category
}

func (m *mockCategoryLister) List(ctx context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func newUniversityService(repo *mockUniversityRepo, categories *mockCategoryLister) *UniversityService {
	if categories == nil {
		categories = &mockCategoryLister{}
	}
	return NewUniversityService(repo, categories, nil, 0, validator.New(), zap.NewNop(), nil)
}

func directoryFixture() []models.University {
	return []models.University{
		{
			ID:         "u1",
			Name:       "IIT Kanpur",
			Location:   "Kanpur",
			Categories: models.StringList{"Engineering"},
			Courses:    models.CourseList{{CourseName: "B.Tech", Fees: 150000}},
		},
		{
			ID:             "u2",
			Name:           "Lucknow Business School",
			Location:       "Lucknow",
			LegacyCategory: "Management & Commerce",
			Courses:        models.CourseList{{CourseName: "MBA", Fees: 90000}},
		},
	}
}

func TestUniversityServiceListAppliesFilter(t *testing.T) {
	repo := &mockUniversityRepo{universities: directoryFixture()}
	svc := newUniversityService(repo, nil)

	all, err := svc.List(context.Background(), directory.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(context.Background(), directory.Filter{Category: "Engineering"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "IIT Kanpur", filtered[0].Name)

	legacy, err := svc.List(context.Background(), directory.Filter{Category: "Management"})
	require.NoError(t, err)
	require.Len(t, legacy, 1)
	assert.Equal(t, "u2", legacy[0].ID)
}

func TestUniversityServiceFilterOptions(t *testing.T) {
	repo := &mockUniversityRepo{universities: directoryFixture()}
	categories := &mockCategoryLister{categories: []models.Category{{Name: "Engineering"}, {Name: "Management"}}}
	svc := newUniversityService(repo, categories)

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Kanpur", "Lucknow"}, opts.Locations)
	assert.Equal(t, []string{"Engineering", "Management"}, opts.Categories)
}

func TestUniversityServiceUpdateScope(t *testing.T) {
	repo := &mockUniversityRepo{universities: directoryFixture()}
	svc := newUniversityService(repo, nil)
	input := models.UniversityInput{Name: "IIT Kanpur", Location: "Kanpur"}

	ownID := "u1"
	otherID := "u2"
	admin := &models.JWTClaims{Role: models.RoleAdmin}
	owner := &models.JWTClaims{Role: models.RoleManager, UniversityID: &ownID}
	stranger := &models.JWTClaims{Role: models.RoleManager, UniversityID: &otherID}

	_, err := svc.Update(context.Background(), "u1", input, admin)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "u1", input, owner)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "u1", input, stranger)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	_, err = svc.Update(context.Background(), "u1", input, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestUniversityServiceUpdateClearsLegacyCategory(t *testing.T) {
	repo := &mockUniversityRepo{universities: directoryFixture()}
	svc := newUniversityService(repo, nil)

	updated, err := svc.Update(context.Background(), "u2", models.UniversityInput{
		Name:       "Lucknow Business School",
		Location:   "Lucknow",
		Categories: models.StringList{"Management"},
	}, &models.JWTClaims{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, updated.LegacyCategory)
	assert.Equal(t, models.StringList{"Management"}, updated.Categories)
}

func buildBulkWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestUniversityServiceBulkImport(t *testing.T) {
	repo := &mockUniversityRepo{}
	svc := newUniversityService(repo, nil)

	workbook := buildBulkWorkbook(t, [][]interface{}{
		{"name", "location", "description", "placement_percentage", "courses", "tags"},
		{"Alpha University", "Kanpur", "First", "85", "B.Tech, MBA", "Hostel"},
		{"", "ignored", "blank name rows are skipped", "10", "", ""},
		{"Beta College", "", "missing location", "70", "", ""},
	})

	result, err := svc.BulkImport(context.Background(), workbook)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, []string{"Alpha University"}, result.Created)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Contains(t, result.Errors[0], "Beta College")
	assert.Equal(t, "Created 1 universities", result.Message)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	require.Len(t, created.Courses, 2)
	assert.Equal(t, "B.Tech", created.Courses[0].CourseName)
	assert.Equal(t, "N/A", created.Courses[0].Duration)
	assert.Equal(t, "Uncategorized", created.Courses[0].Category)
	assert.Equal(t, 85.0, created.PlacementPercentage)
}

func TestUniversityServiceBulkImportMissingColumns(t *testing.T) {
	svc := newUniversityService(&mockUniversityRepo{}, nil)

	workbook := buildBulkWorkbook(t, [][]interface{}{
		{"name", "location"},
		{"Alpha University", "Kanpur"},
	})

	_, err := svc.BulkImport(context.Background(), workbook)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "description")
	assert.Contains(t, appErr.Message, "placement_percentage")
}

func TestUniversityServiceBulkTemplateHeaders(t *testing.T) {
	svc := newUniversityService(&mockUniversityRepo{}, nil)

	raw, err := svc.BulkTemplate()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, bulkColumns, rows[0])
}
