package handlers_test

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AssignmentService ---
type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) AssignInvestors(ctx context.Context, projectID string, investorIDs []string, assignedBy string) ([]domain.InvestorAssignment, error) {
	args := m.Called(ctx, projectID, investorIDs, assignedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestorAssignment), args.Error(1)
}

func (m *MockAssignmentService) GetAssignedInvestors(ctx context.Context, projectID string) ([]domain.InvestorAssignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestorAssignment), args.Error(1)
}

func (m *MockAssignmentService) AssignEmployees(ctx context.Context, projectID string, employeeIDs []string, assignedBy string) ([]domain.ProjectAssignment, error) {
	args := m.Called(ctx, projectID, employeeIDs, assignedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAssignment), args.Error(1)
}

func (m *MockAssignmentService) GetAssignedEmployees(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAssignment), args.Error(1)
}

var _ portssvc.AssignmentSvcFacade = (*MockAssignmentService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetOverview(ctx context.Context) (*domain.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

func (m *MockAnalyticsService) GetAllProjectsOverview(ctx context.Context) ([]domain.ProjectSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectSummary), args.Error(1)
}

func (m *MockAnalyticsService) GetProjectAnalytics(ctx context.Context, projectID string) (*domain.ProjectSummary, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectSummary), args.Error(1)
}

var _ portssvc.AnalyticsService = (*MockAnalyticsService)(nil)

// --- Mock ExpenseReviewService ---
type MockExpenseReviewService struct {
	mock.Mock
}

func (m *MockExpenseReviewService) SubmitReview(ctx context.Context, expenseID string, status domain.ReviewStatus, comment string, reviewerID string) (*domain.ExpenseReview, bool, error) {
	args := m.Called(ctx, expenseID, status, comment, reviewerID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.ExpenseReview), args.Bool(1), args.Error(2)
}

func (m *MockExpenseReviewService) SubmitReviews(ctx context.Context, expenseIDs []string, status domain.ReviewStatus, comment string, reviewerID string) ([]domain.ReviewOutcome, error) {
	args := m.Called(ctx, expenseIDs, status, comment, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewOutcome), args.Error(1)
}

var _ portssvc.ExpenseReviewService = (*MockExpenseReviewService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID string, requestingUserID string) error {
	args := m.Called(ctx, projectID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.ProjectService = (*MockProjectService)(nil)
