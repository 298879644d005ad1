package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListActiveProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SoftDeleteProject(ctx context.Context, projectID string, userID string, now time.Time) error {
	args := m.Called(ctx, projectID, userID, now)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindActiveEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockInvestorRepository struct {
	mock.Mock
}

func (m *MockInvestorRepository) FindActiveInvestorIDs(ctx context.Context, investorIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, investorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindActiveExpenseIDs(ctx context.Context, expenseIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, expenseIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) CreateProjectAssignment(ctx context.Context, assignment domain.ProjectAssignment) (*domain.ProjectAssignment, error) {
	args := m.Called(ctx, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) CreateInvestorAssignment(ctx context.Context, assignment domain.InvestorAssignment) (*domain.InvestorAssignment, error) {
	args := m.Called(ctx, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListProjectAssignments(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListInvestorAssignments(ctx context.Context, projectID string) ([]domain.InvestorAssignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestorAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignedEmployeesByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.EmployeeSummary, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.EmployeeSummary), args.Error(1)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetOverviewCounts(ctx context.Context) (*domain.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

func (m *MockAnalyticsRepository) GetExpenseTotalsByProject(ctx context.Context, projectIDs []string) (map[string]domain.ExpenseRollup, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ExpenseRollup), args.Error(1)
}

func (m *MockAnalyticsRepository) GetInvestmentTotalsByProject(ctx context.Context, projectIDs []string) (map[string]domain.InvestmentRollup, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.InvestmentRollup), args.Error(1)
}

func (m *MockAnalyticsRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockAnalyticsRepository) ListInvestmentsByProject(ctx context.Context, projectID string) ([]domain.Investment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

type MockExpenseReviewRepository struct {
	mock.Mock
}

func (m *MockExpenseReviewRepository) UpsertReview(ctx context.Context, review domain.ExpenseReview) (*domain.ExpenseReview, bool, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ExpenseReview), args.Bool(1), args.Error(2)
}

func (m *MockExpenseReviewRepository) UpsertReviews(ctx context.Context, reviews []domain.ExpenseReview) ([]domain.ReviewOutcome, error) {
	args := m.Called(ctx, reviews)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewOutcome), args.Error(1)
}

// --- Service mocks ---

type MockRoleAuthorizer struct {
	mock.Mock
}

func (m *MockRoleAuthorizer) AuthorizeRole(ctx context.Context, userID string, allowed ...domain.Role) error {
	args := m.Called(ctx, userID, allowed)
	return args.Error(0)
}
