package pgsql

import (
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	projectRepo := newPgxProjectRepository(dbPool)
	peopleRepo := newPgxPeopleRepository(dbPool)
	assignmentRepo := newPgxAssignmentRepository(dbPool)
	analyticsRepo := newPgxAnalyticsRepository(dbPool)
	expenseReviewRepo := newPgxExpenseReviewRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProjectRepo:       projectRepo,
		EmployeeRepo:      peopleRepo,
		InvestorRepo:      peopleRepo,
		ExpenseRepo:       peopleRepo,
		UserRepo:          peopleRepo,
		AssignmentRepo:    assignmentRepo,
		AnalyticsRepo:     analyticsRepo,
		ExpenseReviewRepo: expenseReviewRepo,
	}
}
