package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/SscSPs/project_finance_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	projectRepo    *MockProjectRepository
	assignmentRepo *MockAssignmentRepository
	analyticsRepo  *MockAnalyticsRepository
	service        portssvc.AnalyticsService
	ctx            context.Context
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.projectRepo = new(MockProjectRepository)
	suite.assignmentRepo = new(MockAssignmentRepository)
	suite.analyticsRepo = new(MockAnalyticsRepository)
	suite.service = services.NewAnalyticsService(suite.projectRepo, suite.assignmentRepo, suite.analyticsRepo)
	suite.ctx = context.Background()
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func (suite *AnalyticsServiceTestSuite) TestGetOverview() {
	overview := &domain.Overview{
		TotalProjects:      3,
		TotalEmployees:     12,
		TotalInvestors:     4,
		TotalExpenses:      20,
		TotalAssignments:   9,
		ExpenseReviewStats: domain.ReviewStatusCounts{Approved: 5, Pending: 2},
	}
	suite.analyticsRepo.On("GetOverviewCounts", suite.ctx).Return(overview, nil).Once()

	got, err := suite.service.GetOverview(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), got.TotalProjects)
	suite.Equal(int64(0), got.ExpenseReviewStats.Rejected)
}

func (suite *AnalyticsServiceTestSuite) TestGetOverview_StoreUnavailable() {
	suite.analyticsRepo.On("GetOverviewCounts", suite.ctx).
		Return(nil, apperrors.NewStoreUnavailableError("overview counts", context.Canceled))

	got, err := suite.service.GetOverview(suite.ctx)

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Nil(got)
}

func (suite *AnalyticsServiceTestSuite) TestGetProjectAnalytics_BridgeA() {
	projectID := uuid.NewString()
	inv1, inv2 := uuid.NewString(), uuid.NewString()
	suite.projectRepo.On("FindProjectByID", suite.ctx, projectID).
		Return(&domain.Project{ProjectID: projectID, Name: "Bridge-A"}, nil)
	suite.assignmentRepo.On("ListAssignedEmployeesByProjectIDs", mock.Anything, []string{projectID}).
		Return(map[string][]domain.EmployeeSummary{
			projectID: {{EmployeeID: "e-1", Name: "Meera"}},
		}, nil)
	suite.analyticsRepo.On("ListExpensesByProject", mock.Anything, projectID).Return([]domain.Expense{
		{ExpenseID: "x-1", ProjectID: projectID, Amount: amount(40000)},
		{ExpenseID: "x-2", ProjectID: projectID, Amount: amount(25000)},
	}, nil)
	suite.analyticsRepo.On("ListInvestmentsByProject", mock.Anything, projectID).Return([]domain.Investment{
		{InvestmentID: "i-1", InvestorID: inv1, ProjectID: projectID, InvestedAmount: amount(30000)},
		{InvestmentID: "i-2", InvestorID: inv2, ProjectID: projectID, InvestedAmount: amount(50000)},
	}, nil)

	got, err := suite.service.GetProjectAnalytics(suite.ctx, projectID)

	suite.Require().NoError(err)
	suite.Equal("Bridge-A", got.Project.Name)
	suite.Len(got.Employees, 1)
	suite.True(got.Expenses.TotalExpense.Equal(amount(65000)))
	suite.Equal(int64(2), got.Expenses.ExpenseCount)
	suite.Len(got.Expenses.Details, 2)
	suite.True(got.Investments.TotalInvestment.Equal(amount(80000)))
	suite.Equal(int64(2), got.Investments.InvestorCount)
	suite.Len(got.Investments.Details, 2)
	suite.True(got.Balance.NetBalance.Equal(amount(15000)))
	suite.Equal(domain.Profit, got.Balance.ProfitOrLoss)
	suite.True(got.Balance.NetBalance.Equal(got.Balance.TotalInvestment.Sub(got.Balance.TotalExpense)))
}

func (suite *AnalyticsServiceTestSuite) TestGetProjectAnalytics_BridgeB() {
	projectID := uuid.NewString()
	suite.projectRepo.On("FindProjectByID", suite.ctx, projectID).
		Return(&domain.Project{ProjectID: projectID, Name: "Bridge-B"}, nil)
	suite.assignmentRepo.On("ListAssignedEmployeesByProjectIDs", mock.Anything, []string{projectID}).
		Return(map[string][]domain.EmployeeSummary{}, nil)
	suite.analyticsRepo.On("ListExpensesByProject", mock.Anything, projectID).Return([]domain.Expense{
		{ExpenseID: "x-1", ProjectID: projectID, Amount: amount(10000)},
	}, nil)
	suite.analyticsRepo.On("ListInvestmentsByProject", mock.Anything, projectID).Return(nil, nil)

	got, err := suite.service.GetProjectAnalytics(suite.ctx, projectID)

	suite.Require().NoError(err)
	suite.NotNil(got.Employees)
	suite.Empty(got.Employees)
	suite.True(got.Investments.TotalInvestment.IsZero())
	suite.Equal(int64(0), got.Investments.InvestorCount)
	suite.True(got.Balance.NetBalance.Equal(amount(-10000)))
	suite.Equal(domain.Loss, got.Balance.ProfitOrLoss)
}

func (suite *AnalyticsServiceTestSuite) TestGetProjectAnalytics_NotFound() {
	projectID := uuid.NewString()
	suite.projectRepo.On("FindProjectByID", suite.ctx, projectID).Return(nil, apperrors.ErrNotFound)

	got, err := suite.service.GetProjectAnalytics(suite.ctx, projectID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), projectID)
	suite.Nil(got)
	suite.analyticsRepo.AssertNotCalled(suite.T(), "ListExpensesByProject", mock.Anything, mock.Anything)
}

func (suite *AnalyticsServiceTestSuite) TestGetProjectAnalytics_DetailQueryFails() {
	projectID := uuid.NewString()
	storeErr := apperrors.NewStoreUnavailableError("list investments", context.DeadlineExceeded)
	suite.projectRepo.On("FindProjectByID", suite.ctx, projectID).
		Return(&domain.Project{ProjectID: projectID}, nil)
	suite.assignmentRepo.On("ListAssignedEmployeesByProjectIDs", mock.Anything, []string{projectID}).
		Return(map[string][]domain.EmployeeSummary{}, nil).Maybe()
	suite.analyticsRepo.On("ListExpensesByProject", mock.Anything, projectID).Return([]domain.Expense{}, nil).Maybe()
	suite.analyticsRepo.On("ListInvestmentsByProject", mock.Anything, projectID).Return(nil, storeErr)

	got, err := suite.service.GetProjectAnalytics(suite.ctx, projectID)

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Nil(got)
}

func (suite *AnalyticsServiceTestSuite) TestGetAllProjectsOverview_BatchesAcrossProjects() {
	newer := domain.Project{ProjectID: uuid.NewString(), Name: "Bridge-B", AuditFields: domain.AuditFields{CreatedAt: time.Now()}}
	older := domain.Project{ProjectID: uuid.NewString(), Name: "Bridge-A", AuditFields: domain.AuditFields{CreatedAt: time.Now().Add(-time.Hour)}}
	ids := []string{newer.ProjectID, older.ProjectID}

	suite.projectRepo.On("ListActiveProjects", suite.ctx).Return([]domain.Project{newer, older}, nil)
	suite.assignmentRepo.On("ListAssignedEmployeesByProjectIDs", mock.Anything, ids).
		Return(map[string][]domain.EmployeeSummary{
			older.ProjectID: {{EmployeeID: "e-1"}, {EmployeeID: "e-2"}},
		}, nil).Once()
	suite.analyticsRepo.On("GetExpenseTotalsByProject", mock.Anything, ids).
		Return(map[string]domain.ExpenseRollup{
			older.ProjectID: {TotalExpense: amount(65000), ExpenseCount: 2},
			newer.ProjectID: {TotalExpense: amount(10000), ExpenseCount: 1},
		}, nil).Once()
	suite.analyticsRepo.On("GetInvestmentTotalsByProject", mock.Anything, ids).
		Return(map[string]domain.InvestmentRollup{
			older.ProjectID: {TotalInvestment: amount(80000), InvestorCount: 2},
		}, nil).Once()

	got, err := suite.service.GetAllProjectsOverview(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)

	suite.Equal("Bridge-B", got[0].Project.Name)
	suite.Empty(got[0].Employees)
	suite.NotNil(got[0].Employees)
	suite.True(got[0].Balance.NetBalance.Equal(amount(-10000)))
	suite.Equal(domain.Loss, got[0].Balance.ProfitOrLoss)

	suite.Equal("Bridge-A", got[1].Project.Name)
	suite.Len(got[1].Employees, 2)
	suite.True(got[1].Balance.NetBalance.Equal(amount(15000)))
	suite.Equal(domain.Profit, got[1].Balance.ProfitOrLoss)

	suite.assignmentRepo.AssertExpectations(suite.T())
	suite.analyticsRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetAllProjectsOverview_EmptyState() {
	project := domain.Project{ProjectID: uuid.NewString(), Name: "Fresh"}
	ids := []string{project.ProjectID}
	suite.projectRepo.On("ListActiveProjects", suite.ctx).Return([]domain.Project{project}, nil)
	suite.assignmentRepo.On("ListAssignedEmployeesByProjectIDs", mock.Anything, ids).
		Return(map[string][]domain.EmployeeSummary{}, nil)
	suite.analyticsRepo.On("GetExpenseTotalsByProject", mock.Anything, ids).Return(map[string]domain.ExpenseRollup{}, nil)
	suite.analyticsRepo.On("GetInvestmentTotalsByProject", mock.Anything, ids).Return(map[string]domain.InvestmentRollup{}, nil)

	got, err := suite.service.GetAllProjectsOverview(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.NotNil(got[0].Employees)
	suite.Empty(got[0].Employees)
	suite.Equal(int64(0), got[0].Expenses.ExpenseCount)
	suite.True(got[0].Expenses.TotalExpense.IsZero())
	suite.True(got[0].Balance.NetBalance.IsZero())
	suite.Equal(domain.Profit, got[0].Balance.ProfitOrLoss)
}

func (suite *AnalyticsServiceTestSuite) TestGetAllProjectsOverview_NoProjects() {
	suite.projectRepo.On("ListActiveProjects", suite.ctx).Return([]domain.Project{}, nil)

	got, err := suite.service.GetAllProjectsOverview(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
	suite.analyticsRepo.AssertNotCalled(suite.T(), "GetExpenseTotalsByProject", mock.Anything, mock.Anything)
}

func (suite *AnalyticsServiceTestSuite) TestGetAllProjectsOverview_GroupedQueryFails() {
	project := domain.Project{ProjectID: uuid.NewString()}
	ids := []string{project.ProjectID}
	suite.projectRepo.On("ListActiveProjects", suite.ctx).Return([]domain.Project{project}, nil)
	suite.assignmentRepo.On("ListAssignedEmployeesByProjectIDs", mock.Anything, ids).
		Return(map[string][]domain.EmployeeSummary{}, nil).Maybe()
	suite.analyticsRepo.On("GetExpenseTotalsByProject", mock.Anything, ids).Return(nil, assert.AnError).Maybe()
	suite.analyticsRepo.On("GetInvestmentTotalsByProject", mock.Anything, ids).
		Return(map[string]domain.InvestmentRollup{}, nil).Maybe()

	got, err := suite.service.GetAllProjectsOverview(suite.ctx)

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(got)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
