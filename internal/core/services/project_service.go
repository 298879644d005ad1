package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectWriter
	now         func() time.Time
}

// ProjectServiceOption is a functional option for configuring the project service
type ProjectServiceOption func(*projectService)

// WithProjectClock overrides the time source used for deletion timestamps
func WithProjectClock(now func() time.Time) ProjectServiceOption {
	return func(s *projectService) {
		s.now = now
	}
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectWriter, authorizer portssvc.RoleAuthorizerSvc, options ...ProjectServiceOption) portssvc.ProjectService {
	svc := &projectService{
		BaseService: BaseService{Authorizer: authorizer},
		projectRepo: projectRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProjectService = (*projectService)(nil)

// DeleteProject hides the project from every active read. Its expenses,
// investments and links are left in place.
func (s *projectService) DeleteProject(ctx context.Context, projectID string, requestingUserID string) error {
	if err := s.AuthorizeRole(ctx, requestingUserID, domain.RoleAccountant); err != nil {
		s.LogError(ctx, err, "User not authorized to delete project",
			slog.String("user_id", requestingUserID),
			slog.String("project_id", projectID))
		return err
	}

	projectID, err := requireID("project_id", projectID)
	if err != nil {
		return err
	}

	if err := s.projectRepo.SoftDeleteProject(ctx, projectID, requestingUserID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("project not found: %s", projectID))
		}
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}

	s.LogInfo(ctx, "Project deleted",
		slog.String("project_id", projectID),
		slog.String("user_id", requestingUserID))
	return nil
}
