package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/SscSPs/project_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	handlerSuite
}

func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func bridgeSummary(projectID string) domain.ProjectSummary {
	expenses := domain.RollupExpenses([]domain.Expense{
		{ExpenseID: "e1", Title: "Cement", Amount: decimal.NewFromInt(40000), ExpenseDate: time.Now()},
		{ExpenseID: "e2", Title: "Steel", Amount: decimal.NewFromInt(25000), ExpenseDate: time.Now()},
	})
	investments := domain.RollupInvestments([]domain.Investment{
		{InvestmentID: "i1", InvestorID: "a", InvestedAmount: decimal.NewFromInt(30000)},
		{InvestmentID: "i2", InvestorID: "b", InvestedAmount: decimal.NewFromInt(50000)},
	})
	return domain.NewProjectSummary(domain.Project{ProjectID: projectID, Name: "Bridge-A"}, nil, expenses, investments)
}

func (s *AnalyticsHandlerTestSuite) TestGetOverview() {
	s.analytics.On("GetOverview", mock.Anything).Return(&domain.Overview{
		TotalProjects:      3,
		TotalEmployees:     7,
		ExpenseReviewStats: domain.ReviewStatusCounts{Approved: 2, Pending: 1},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/overview", "", domain.RoleReviewer)

	s.Equal(http.StatusOK, w.Code)
	var resp domain.Overview
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(3), resp.TotalProjects)
	s.Equal(int64(2), resp.ExpenseReviewStats.Approved)
}

func (s *AnalyticsHandlerTestSuite) TestGetOverview_StoreUnavailable() {
	s.analytics.On("GetOverview", mock.Anything).
		Return(nil, apperrors.NewStoreUnavailableError("overview", context.DeadlineExceeded)).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/overview", "", domain.RoleAccountant)

	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetOverview_Unauthenticated() {
	w := s.do(http.MethodGet, "/api/v1/dashboard/overview", "", "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetAllProjectsOverview_OmitsLineItems() {
	projectID := uuid.NewString()
	s.analytics.On("GetAllProjectsOverview", mock.Anything).Return([]domain.ProjectSummary{bridgeSummary(projectID)}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/projects/all", "", domain.RoleAccountant)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ProjectsOverviewResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Equal(1, resp.Count)
	s.NotContains(w.Body.String(), `"details"`)
	s.NotNil(resp.Projects[0].Employees)
	s.True(decimal.NewFromInt(15000).Equal(resp.Projects[0].Balance.NetBalance))
}

func (s *AnalyticsHandlerTestSuite) TestGetProjectAnalytics() {
	projectID := uuid.NewString()
	summary := bridgeSummary(projectID)
	s.analytics.On("GetProjectAnalytics", mock.Anything, projectID).Return(&summary, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/project/"+projectID, "", domain.RoleReviewer)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ProjectAnalyticsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Bridge-A", resp.Project.Name)
	s.True(decimal.NewFromInt(65000).Equal(resp.Expenses.TotalExpense))
	s.True(decimal.NewFromInt(80000).Equal(resp.Investments.TotalInvestment))
	s.Equal(int64(2), resp.Investments.InvestorCount)
	s.True(decimal.NewFromInt(15000).Equal(resp.Balance.NetBalance))
	s.Equal(domain.Profit, resp.Balance.ProfitOrLoss)
	s.Len(resp.Expenses.Details, 2)
	s.Len(resp.Investments.Details, 2)
}

func (s *AnalyticsHandlerTestSuite) TestGetProjectAnalytics_EmptyProjectKeepsDetails() {
	projectID := uuid.NewString()
	summary := domain.NewProjectSummary(domain.Project{ProjectID: projectID, Name: "Bridge-C"}, nil,
		domain.RollupExpenses(nil), domain.RollupInvestments(nil))
	s.analytics.On("GetProjectAnalytics", mock.Anything, projectID).Return(&summary, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/project/"+projectID, "", domain.RoleAccountant)

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Expenses struct {
			Details json.RawMessage `json:"details"`
		} `json:"expenses"`
		Investments struct {
			Details json.RawMessage `json:"details"`
		} `json:"investments"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.JSONEq(`[]`, string(body.Expenses.Details))
	s.JSONEq(`[]`, string(body.Investments.Details))
}

func (s *AnalyticsHandlerTestSuite) TestGetProjectAnalytics_NotFound() {
	projectID := uuid.NewString()
	s.analytics.On("GetProjectAnalytics", mock.Anything, projectID).
		Return(nil, apperrors.NewNotFoundError("project "+projectID+" not found")).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/project/"+projectID, "", domain.RoleReviewer)

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), projectID)
}
