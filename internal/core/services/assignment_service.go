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
	"github.com/SscSPs/project_finance_app/internal/platform/metrics"
	"github.com/google/uuid"
)

// assignmentService implements the AssignmentSvcFacade interface
type assignmentService struct {
	BaseService
	projectRepo    portsrepo.ProjectReader
	employeeRepo   portsrepo.EmployeeReader
	investorRepo   portsrepo.InvestorReader
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	now            func() time.Time
}

// AssignmentServiceOption is a functional option for configuring the assignment service
type AssignmentServiceOption func(*assignmentService)

// WithAssignmentAuthorizer adds the role authorizer used for mutating calls
func WithAssignmentAuthorizer(authorizer portssvc.RoleAuthorizerSvc) AssignmentServiceOption {
	return func(s *assignmentService) {
		s.Authorizer = authorizer
	}
}

// WithAssignmentClock overrides the time source used for audit timestamps
func WithAssignmentClock(now func() time.Time) AssignmentServiceOption {
	return func(s *assignmentService) {
		s.now = now
	}
}

// NewAssignmentService creates a new assignment service with the provided options
func NewAssignmentService(
	projectRepo portsrepo.ProjectReader,
	employeeRepo portsrepo.EmployeeReader,
	investorRepo portsrepo.InvestorReader,
	assignmentRepo portsrepo.AssignmentRepositoryFacade,
	options ...AssignmentServiceOption,
) portssvc.AssignmentSvcFacade {
	svc := &assignmentService{
		projectRepo:    projectRepo,
		employeeRepo:   employeeRepo,
		investorRepo:   investorRepo,
		assignmentRepo: assignmentRepo,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

// linkBatch describes one kind of project link for assignBatch.
type linkBatch[T any] struct {
	kind       string
	field      string
	findActive func(ctx context.Context, ids []string) (map[string]bool, error)
	create     func(ctx context.Context, projectID, assigneeID, assignedBy string, now time.Time) (*T, error)
}

// assignBatch links every id to the project. The project and every id must
// exist before anything is written. Pairs that are already linked are
// skipped, including when a concurrent request linked them first.
func assignBatch[T any](ctx context.Context, s *assignmentService, projectID string, ids []string, assignedBy string, b linkBatch[T]) ([]T, error) {
	if err := s.AuthorizeRole(ctx, assignedBy, domain.RoleAccountant); err != nil {
		s.LogError(ctx, err, "User not authorized to assign to project",
			slog.String("user_id", assignedBy),
			slog.String("project_id", projectID),
			slog.String("kind", b.kind))
		return nil, err
	}

	projectID, err := requireID("project_id", projectID)
	if err != nil {
		return nil, err
	}
	ids, err = normalizeIDs(b.field, ids)
	if err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("project not found: %s", projectID))
		}
		s.LogError(ctx, err, "Failed to look up project", slog.String("project_id", projectID))
		return nil, err
	}

	active, err := b.findActive(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up assignees",
			slog.String("project_id", projectID),
			slog.String("kind", b.kind))
		return nil, err
	}
	for _, id := range ids {
		if !active[id] {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s not found: %s", b.kind, id))
		}
	}

	now := s.now()
	created := make([]T, 0, len(ids))
	for _, id := range ids {
		link, err := b.create(ctx, projectID, id, assignedBy, now)
		if errors.Is(err, apperrors.ErrDuplicate) {
			metrics.IncrementAssignmentOutcome(b.kind, "skipped")
			s.LogDebug(ctx, "Assignee already linked to project, skipping",
				slog.String("project_id", projectID),
				slog.String(b.field, id))
			continue
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to create project link",
				slog.String("project_id", projectID),
				slog.String(b.field, id))
			return nil, err
		}
		metrics.IncrementAssignmentOutcome(b.kind, "created")
		created = append(created, *link)
	}

	if len(created) == 0 {
		return nil, apperrors.NewAllAlreadyAssignedError(
			fmt.Sprintf("every requested %s is already assigned to project %s", b.kind, projectID))
	}

	s.LogInfo(ctx, "Project links created",
		slog.String("project_id", projectID),
		slog.String("kind", b.kind),
		slog.Int("requested", len(ids)),
		slog.Int("created", len(created)))
	return created, nil
}

func (s *assignmentService) AssignInvestors(ctx context.Context, projectID string, investorIDs []string, assignedBy string) ([]domain.InvestorAssignment, error) {
	return assignBatch(ctx, s, projectID, investorIDs, assignedBy, linkBatch[domain.InvestorAssignment]{
		kind:       "investor",
		field:      "investor_id",
		findActive: s.investorRepo.FindActiveInvestorIDs,
		create: func(ctx context.Context, projectID, investorID, assignedBy string, now time.Time) (*domain.InvestorAssignment, error) {
			return s.assignmentRepo.CreateInvestorAssignment(ctx, domain.InvestorAssignment{
				AssignmentID: uuid.NewString(),
				ProjectID:    projectID,
				InvestorID:   investorID,
				AssignedBy:   assignedBy,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		},
	})
}

func (s *assignmentService) AssignEmployees(ctx context.Context, projectID string, employeeIDs []string, assignedBy string) ([]domain.ProjectAssignment, error) {
	return assignBatch(ctx, s, projectID, employeeIDs, assignedBy, linkBatch[domain.ProjectAssignment]{
		kind:       "employee",
		field:      "employee_id",
		findActive: s.employeeRepo.FindActiveEmployeeIDs,
		create: func(ctx context.Context, projectID, employeeID, assignedBy string, now time.Time) (*domain.ProjectAssignment, error) {
			return s.assignmentRepo.CreateProjectAssignment(ctx, domain.ProjectAssignment{
				AssignmentID: uuid.NewString(),
				ProjectID:    projectID,
				EmployeeID:   employeeID,
				AssignedBy:   assignedBy,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		},
	})
}

func (s *assignmentService) GetAssignedInvestors(ctx context.Context, projectID string) ([]domain.InvestorAssignment, error) {
	projectID, err := requireID("project_id", projectID)
	if err != nil {
		return nil, err
	}
	links, err := s.assignmentRepo.ListInvestorAssignments(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investor assignments", slog.String("project_id", projectID))
		return nil, err
	}
	if links == nil {
		links = []domain.InvestorAssignment{}
	}
	return links, nil
}

func (s *assignmentService) GetAssignedEmployees(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error) {
	projectID, err := requireID("project_id", projectID)
	if err != nil {
		return nil, err
	}
	links, err := s.assignmentRepo.ListProjectAssignments(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list project assignments", slog.String("project_id", projectID))
		return nil, err
	}
	if links == nil {
		links = []domain.ProjectAssignment{}
	}
	return links, nil
}
