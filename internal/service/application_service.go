package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/models"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/export"
)

type applicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	List(ctx context.Context) ([]models.Application, error)
	ListByUniversity(ctx context.Context, universityID string) ([]models.Application, error)
	FindByID(ctx context.Context, id string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type universityFinder interface {
	FindByID(ctx context.Context, id string) (*models.University, error)
}

// Export column order for lead workbooks.
var applicationExportHeaders = []string{"Name", "Email", "Phone", "University Name", "Course Interest", "Short Note", "Date", "Status"}

var allowedStatuses = map[string]struct{}{
	models.ApplicationPending:   {},
	models.ApplicationCompleted: {},
	models.ApplicationCancelled: {},
}

// ApplicationService owns lead intake and the manager/admin lead consoles.
type ApplicationService struct {
	repo         applicationRepository
	universities universityFinder
	excel        *export.ExcelExporter
	pdf          *export.PDFExporter
	csv          *export.CSVExporter
	validator    *validator.Validate
	logger       *zap.Logger
	metrics      *MetricsService
}

// NewApplicationService creates an instance of ApplicationService.
func NewApplicationService(repo applicationRepository, universities universityFinder, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ApplicationService{
		repo:         repo,
		universities: universities,
		excel:        export.NewExcelExporter(),
		pdf:          export.NewPDFExporter(),
		csv:          export.NewCSVExporter(),
		validator:    validate,
		logger:       logger,
		metrics:      metrics,
	}
}

// Create records a public lead submission against one university.
func (s *ApplicationService) Create(ctx context.Context, input models.ApplicationInput) (*models.Application, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	university, err := s.universities.FindByID(ctx, input.UniversityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "university not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load university")
	}

	app := &models.Application{
		UniversityID:   university.ID,
		UniversityName: university.Name,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		CourseInterest: input.CourseInterest,
		ShortNote:      input.ShortNote,
		Status:         models.ApplicationPending,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create application")
	}

	if s.metrics != nil {
		s.metrics.IncApplicationsSubmitted()
	}
	return app, nil
}

// ListForActor returns the leads visible to the actor: admins see all,
// managers only their university's.
func (s *ApplicationService) ListForActor(ctx context.Context, actor *models.JWTClaims) ([]models.Application, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	switch actor.Role {
	case models.RoleAdmin:
		apps, err := s.repo.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
		}
		return apps, nil
	case models.RoleManager:
		if actor.UniversityID == nil {
			return []models.Application{}, nil
		}
		apps, err := s.repo.ListByUniversity(ctx, *actor.UniversityID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
		}
		return apps, nil
	default:
		return nil, appErrors.ErrForbidden
	}
}

// ListByUniversity returns one university's leads, enforcing manager scope.
func (s *ApplicationService) ListByUniversity(ctx context.Context, universityID string, actor *models.JWTClaims) ([]models.Application, error) {
	if err := s.authorizeScope(actor, universityID); err != nil {
		return nil, err
	}
	apps, err := s.repo.ListByUniversity(ctx, universityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
	}
	return apps, nil
}

// UpdateStatus moves a lead through the workflow.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status string, actor *models.JWTClaims) (*models.Application, error) {
	if _, ok := allowedStatuses[status]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown application status")
	}

	app, err := s.findScoped(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update application status")
	}
	app.Status = status
	return app, nil
}

// Delete removes a lead.
func (s *ApplicationService) Delete(ctx context.Context, id string, actor *models.JWTClaims) error {
	if _, err := s.findScoped(ctx, id, actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete application")
	}
	return nil
}

// Export renders the actor-visible leads (optionally one university's) as a
// downloadable file. Format is "xlsx", "pdf" or "csv".
func (s *ApplicationService) Export(ctx context.Context, universityID, format string, actor *models.JWTClaims) (string, string, []byte, error) {
	var apps []models.Application
	var err error
	if universityID != "" {
		apps, err = s.ListByUniversity(ctx, universityID, actor)
	} else {
		apps, err = s.ListForActor(ctx, actor)
	}
	if err != nil {
		return "", "", nil, err
	}

	data := export.Dataset{Headers: applicationExportHeaders}
	for _, app := range apps {
		data.Rows = append(data.Rows, map[string]string{
			"Name":            app.Name,
			"Email":           app.Email,
			"Phone":           app.Phone,
			"University Name": app.UniversityName,
			"Course Interest": app.CourseInterest,
			"Short Note":      app.ShortNote,
			"Date":            app.CreatedAt.Format("2006-01-02 15:04"),
			"Status":          app.Status,
		})
	}

	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case "pdf":
		raw, err := s.pdf.Render(data, "Applications")
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return fmt.Sprintf("applications_%s.pdf", stamp), "application/pdf", raw, nil
	case "csv":
		raw, err := s.csv.Render(data)
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return fmt.Sprintf("applications_%s.csv", stamp), "text/csv", raw, nil
	default:
		raw, err := s.excel.Render(data, "Applications")
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render xlsx")
		}
		return fmt.Sprintf("applications_%s.xlsx", stamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw, nil
	}
}

func (s *ApplicationService) findScoped(ctx context.Context, id string, actor *models.JWTClaims) (*models.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load application")
	}
	if err := s.authorizeScope(actor, app.UniversityID); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) authorizeScope(actor *models.JWTClaims, universityID string) error {
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
		return appErrors.Clone(appErrors.ErrForbidden, "managers can only access their own university's applications")
	default:
		return appErrors.ErrForbidden
	}
}
