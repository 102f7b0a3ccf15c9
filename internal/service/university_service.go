package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/directory"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/export"
)

type universityRepository interface {
	List(ctx context.Context) ([]models.University, error)
	FindByID(ctx context.Context, id string) (*models.University, error)
	Create(ctx context.Context, u *models.University) error
	Update(ctx context.Context, u *models.University) error
	Delete(ctx context.Context, id string) error
}

type categoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Column order of the bulk import template.
var bulkColumns = []string{"name", "location", "state", "description", "courses", "placement_percentage", "rating", "tags", "email", "phone", "website"}

// Columns a bulk workbook must carry for any row to be imported.
var bulkRequiredColumns = []string{"name", "location", "description", "placement_percentage"}

const filterOptionsCacheKey = "universities:filter_options"

// UniversityService owns the directory listings. The filter-option
// vocabulary goes through an optional Redis cache invalidated by any
// write to the directory.
type UniversityService struct {
	repo       universityRepository
	categories categoryLister
	cache      *redis.Client
	cacheTTL   time.Duration
	excel      *export.ExcelExporter
	validator  *validator.Validate
	logger     *zap.Logger
	metrics    *MetricsService
}

// NewUniversityService creates an instance of UniversityService. The cache
// client may be nil.
func NewUniversityService(repo universityRepository, categories categoryLister, cache *redis.Client, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *UniversityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &UniversityService{
		repo:       repo,
		categories: categories,
		cache:      cache,
		cacheTTL:   cacheTTL,
		excel:      export.NewExcelExporter(),
		validator:  validate,
		logger:     logger,
		metrics:    metrics,
	}
}

// List returns listings matching the given facets. Server-side search uses
// the same matcher as the listing screen's reactive filter.
func (s *UniversityService) List(ctx context.Context, f directory.Filter) ([]models.University, error) {
	universities, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list universities")
	}
	if !f.Active() {
		return universities, nil
	}
	return directory.Apply(f, universities), nil
}

// Get returns one listing by ID.
func (s *UniversityService) Get(ctx context.Context, id string) (*models.University, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "university not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load university")
	}
	return u, nil
}

// FilterOptions returns the dropdown vocabulary for the listing screen.
func (s *UniversityService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if cached := s.optionsFromCache(ctx); cached != nil {
		return cached, nil
	}

	universities, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list universities")
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	options := &models.FilterOptions{
		Locations:  directory.Locations(universities),
		Categories: names,
	}
	s.optionsToCache(ctx, options)
	return options, nil
}

func (s *UniversityService) optionsFromCache(ctx context.Context) *models.FilterOptions {
	if s.cache == nil {
		return nil
	}
	start := time.Now()
	raw, err := s.cache.Get(ctx, filterOptionsCacheKey).Bytes()
	hit := err == nil
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(hit, time.Since(start))
	}
	if !hit {
		return nil
	}
	var options models.FilterOptions
	if err := json.Unmarshal(raw, &options); err != nil {
		s.logger.Warn("corrupt filter-options cache entry", zap.Error(err))
		return nil
	}
	return &options
}

func (s *UniversityService) optionsToCache(ctx context.Context, options *models.FilterOptions) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return
	}
	start := time.Now()
	if err := s.cache.Set(ctx, filterOptionsCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache filter options", zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.ObserveCacheWrite(time.Since(start))
	}
}

func (s *UniversityService) invalidateOptions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, filterOptionsCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate filter-options cache", zap.Error(err))
	}
}

// Create adds a new listing. Admin only; the handler enforces the role.
func (s *UniversityService) Create(ctx context.Context, input models.UniversityInput) (*models.University, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid university payload")
	}

	u := applyInput(&models.University{}, input)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create university")
	}
	s.invalidateOptions(ctx)
	return u, nil
}

// Update replaces a listing. Admins may update any listing; managers only
// the one they administer.
func (s *UniversityService) Update(ctx context.Context, id string, input models.UniversityInput, actor *models.JWTClaims) (*models.University, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid university payload")
	}
	if err := s.authorizeManage(actor, id); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "university not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load university")
	}

	u = applyInput(u, input)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update university")
	}
	s.invalidateOptions(ctx)
	return u, nil
}

// Delete removes a listing. Admin only; the handler enforces the role.
func (s *UniversityService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "university not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load university")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete university")
	}
	s.invalidateOptions(ctx)
	return nil
}

// SetMainPhoto stores the uploaded photo URL on the listing.
func (s *UniversityService) SetMainPhoto(ctx context.Context, id, url string, actor *models.JWTClaims) (*models.University, error) {
	if err := s.authorizeManage(actor, id); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "university not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load university")
	}
	u.MainPhoto = url
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update university")
	}
	return u, nil
}

// BulkTemplate renders the import workbook with headers and one sample row.
func (s *UniversityService) BulkTemplate() ([]byte, error) {
	data := export.Dataset{
		Headers: bulkColumns,
		Rows: []map[string]string{{
			"name":                 "Example University",
			"location":             "Kanpur",
			"state":                "Uttar Pradesh",
			"description":          "Short description of the university",
			"courses":              "B.Tech, MBA, B.Sc",
			"placement_percentage": "85",
			"rating":               "4.2",
			"tags":                 "Scholarship, Hostel",
			"email":                "info@example.edu",
			"phone":                "+91 9999999999",
			"website":              "https://example.edu",
		}},
	}
	raw, err := s.excel.Render(data, "Universities")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render template")
	}
	return raw, nil
}

// BulkImport parses an uploaded workbook and creates one listing per valid
// row. Row failures are collected, not fatal.
func (s *UniversityService) BulkImport(ctx context.Context, workbook []byte) (*models.BulkImportResult, error) {
	rows, err := export.ReadSheet(workbook)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "could not read the Excel file")
	}
	if len(rows) < 1 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "the Excel file is empty")
	}

	index := make(map[string]int)
	for i, header := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}

	var missing []string
	for _, col := range bulkRequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "missing required columns: "+strings.Join(missing, ", "))
	}

	result := &models.BulkImportResult{Created: []string{}, Errors: []string{}}
	for rowNum, row := range rows[1:] {
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := cell("name")
		if name == "" {
			continue
		}

		u := &models.University{
			Name:        name,
			Location:    cell("location"),
			State:       cell("state"),
			Description: cell("description"),
			Courses:     parseBulkCourses(cell("courses")),
			Tags:        splitCSV(cell("tags")),
			Categories:  models.StringList{},
			ContactDetails: models.ContactDetails{
				Email:   cell("email"),
				Phone:   cell("phone"),
				Website: cell("website"),
			},
		}
		if v, err := strconv.ParseFloat(cell("placement_percentage"), 64); err == nil {
			u.PlacementPercentage = v
		}
		if v, err := strconv.ParseFloat(cell("rating"), 64); err == nil {
			u.Rating = v
		}

		if u.Location == "" || u.Description == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d (%s): location and description are required", rowNum+2, name))
			continue
		}

		if err := s.repo.Create(ctx, u); err != nil {
			s.logger.Warn("bulk import row failed", zap.Int("row", rowNum+2), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("row %d (%s): %v", rowNum+2, name, err))
			continue
		}
		result.Created = append(result.Created, name)
	}

	result.CreatedCount = len(result.Created)
	result.ErrorCount = len(result.Errors)
	result.Message = fmt.Sprintf("Created %d universities", result.CreatedCount)
	if s.metrics != nil {
		s.metrics.AddBulkRowsImported(result.CreatedCount)
	}
	if result.CreatedCount > 0 {
		s.invalidateOptions(ctx)
	}
	return result, nil
}

func (s *UniversityService) authorizeManage(actor *models.JWTClaims, universityID string) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleManager:
		if actor.UniversityID != nil && *actor.UniversityID == universityID {
			return nil
		}
		return appErrors.Clone(appErrors.ErrForbidden, "managers can only update their own university")
	default:
		return appErrors.ErrForbidden
	}
}

func applyInput(u *models.University, input models.UniversityInput) *models.University {
	u.Name = input.Name
	u.Location = input.Location
	u.State = input.State
	u.Categories = orEmpty(input.Categories)
	u.MainPhoto = input.MainPhoto
	u.PhotoGallery = orEmpty(input.PhotoGallery)
	u.Description = input.Description
	u.Courses = input.Courses
	if u.Courses == nil {
		u.Courses = models.CourseList{}
	}
	u.PlacementPercentage = input.PlacementPercentage
	u.Rating = input.Rating
	u.Tags = orEmpty(input.Tags)
	u.ContactDetails = input.ContactDetails
	// A full replace from the editor supersedes any legacy singular value.
	u.LegacyCategory = ""
	return u
}

func parseBulkCourses(raw string) models.CourseList {
	names := splitCSV(raw)
	courses := make(models.CourseList, 0, len(names))
	for _, name := range names {
		courses = append(courses, models.Course{
			CourseName: name,
			Duration:   "N/A",
			Category:   "Uncategorized",
		})
	}
	return courses
}

func splitCSV(raw string) models.StringList {
	if strings.TrimSpace(raw) == "" {
		return models.StringList{}
	}
	parts := strings.Split(raw, ",")
	out := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func orEmpty(l models.StringList) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return l
}
