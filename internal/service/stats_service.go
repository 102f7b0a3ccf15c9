package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/models"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

type universityCounter interface {
	Count(ctx context.Context) (int, error)
}

type applicationCounter interface {
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type userCounter interface {
	CountByRole(ctx context.Context, role models.UserRole) (int, error)
}

// StatsService aggregates the counters shown on the admin dashboard.
type StatsService struct {
	universities universityCounter
	applications applicationCounter
	users        userCounter
	logger       *zap.Logger
}

// NewStatsService creates an instance of StatsService.
func NewStatsService(universities universityCounter, applications applicationCounter, users userCounter, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{universities: universities, applications: applications, users: users, logger: logger}
}

// AdminStats returns the dashboard counters in one call.
func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	universities, err := s.universities.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count universities")
	}
	applications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count applications")
	}
	pending, err := s.applications.CountByStatus(ctx, models.ApplicationPending)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count pending applications")
	}
	managers, err := s.users.CountByRole(ctx, models.RoleManager)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count managers")
	}

	return &models.AdminStats{
		TotalUniversities:   universities,
		TotalApplications:   applications,
		TotalManagers:       managers,
		PendingApplications: pending,
	}, nil
}
