package services

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// InvestorAssignmentSvc manages project <-> investor links
type InvestorAssignmentSvc interface {
	// AssignInvestors links each investor to the project, skipping pairs that are
	// already linked. Fails with apperrors.ErrAllAlreadyAssigned when nothing new was created.
	AssignInvestors(ctx context.Context, projectID string, investorIDs []string, assignedBy string) ([]domain.InvestorAssignment, error)

	// GetAssignedInvestors lists active investor links for a project.
	GetAssignedInvestors(ctx context.Context, projectID string) ([]domain.InvestorAssignment, error)
}

// EmployeeAssignmentSvc manages project <-> employee links
type EmployeeAssignmentSvc interface {
	// AssignEmployees links each employee to the project, skipping pairs that are
	// already linked. Fails with apperrors.ErrAllAlreadyAssigned when nothing new was created.
	AssignEmployees(ctx context.Context, projectID string, employeeIDs []string, assignedBy string) ([]domain.ProjectAssignment, error)

	// GetAssignedEmployees lists active employee links for a project.
	GetAssignedEmployees(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error)
}

// AssignmentSvcFacade combines all assignment-related service interfaces
type AssignmentSvcFacade interface {
	InvestorAssignmentSvc
	EmployeeAssignmentSvc
}
