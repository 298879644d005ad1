package repositories

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// AssignmentWriter inserts project links. Inserts rely on the store's
// uniqueness constraint over the active (project, assignee) pair: when an
// active link already exists the insert is a no-op and apperrors.ErrDuplicate
// is returned.
type AssignmentWriter interface {
	CreateProjectAssignment(ctx context.Context, assignment domain.ProjectAssignment) (*domain.ProjectAssignment, error)
	CreateInvestorAssignment(ctx context.Context, assignment domain.InvestorAssignment) (*domain.InvestorAssignment, error)
}

// AssignmentReader reads active project links with display attributes attached.
type AssignmentReader interface {
	// ListProjectAssignments returns active employee links for a project.
	ListProjectAssignments(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error)

	// ListInvestorAssignments returns active investor links for a project.
	ListInvestorAssignments(ctx context.Context, projectID string) ([]domain.InvestorAssignment, error)

	// ListAssignedEmployeesByProjectIDs returns assigned active employees for
	// many projects in one round trip, keyed by project id.
	ListAssignedEmployeesByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.EmployeeSummary, error)
}

// AssignmentRepositoryFacade combines all assignment-related repository interfaces
type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
