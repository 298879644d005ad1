package services

import (
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The authorizer comes first since every mutating service depends on it
	container.Authorizer = NewRoleAuthorizer(repos.UserRepo)

	container.Assignment = NewAssignmentService(
		repos.ProjectRepo,
		repos.EmployeeRepo,
		repos.InvestorRepo,
		repos.AssignmentRepo,
		WithAssignmentAuthorizer(container.Authorizer),
	)
	container.Analytics = NewAnalyticsService(repos.ProjectRepo, repos.AssignmentRepo, repos.AnalyticsRepo)
	container.ExpenseReview = NewExpenseReviewService(repos.ExpenseRepo, repos.ExpenseReviewRepo, container.Authorizer)
	container.Project = NewProjectService(repos.ProjectRepo, container.Authorizer)

	return container
}
