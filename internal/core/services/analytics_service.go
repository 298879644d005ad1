package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	BaseService
	projectRepo    portsrepo.ProjectReader
	assignmentRepo portsrepo.AssignmentReader
	analyticsRepo  portsrepo.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(projectRepo portsrepo.ProjectReader, assignmentRepo portsrepo.AssignmentReader, analyticsRepo portsrepo.AnalyticsRepository) portssvc.AnalyticsService {
	return &analyticsService{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		analyticsRepo:  analyticsRepo,
	}
}

var _ portssvc.AnalyticsService = (*analyticsService)(nil)

func (s *analyticsService) GetOverview(ctx context.Context) (*domain.Overview, error) {
	overview, err := s.analyticsRepo.GetOverviewCounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute overview counts")
		return nil, err
	}
	return overview, nil
}

// GetAllProjectsOverview loads active projects and then fetches assigned
// employees, expense totals and investment totals for all of them with one
// grouped query each.
func (s *analyticsService) GetAllProjectsOverview(ctx context.Context) ([]domain.ProjectSummary, error) {
	projects, err := s.projectRepo.ListActiveProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active projects")
		return nil, err
	}
	if len(projects) == 0 {
		return []domain.ProjectSummary{}, nil
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ProjectID
	}

	var (
		employees   map[string][]domain.EmployeeSummary
		expenses    map[string]domain.ExpenseRollup
		investments map[string]domain.InvestmentRollup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.assignmentRepo.ListAssignedEmployeesByProjectIDs(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.analyticsRepo.GetExpenseTotalsByProject(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		investments, err = s.analyticsRepo.GetInvestmentTotalsByProject(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to aggregate project rollups", slog.Int("project_count", len(projects)))
		return nil, err
	}

	summaries := make([]domain.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		exp, ok := expenses[p.ProjectID]
		if !ok {
			exp = domain.ExpenseRollup{TotalExpense: decimal.Zero}
		}
		inv, ok := investments[p.ProjectID]
		if !ok {
			inv = domain.InvestmentRollup{TotalInvestment: decimal.Zero}
		}
		summaries = append(summaries, domain.NewProjectSummary(p, employees[p.ProjectID], exp, inv))
	}
	return summaries, nil
}

func (s *analyticsService) GetProjectAnalytics(ctx context.Context, projectID string) (*domain.ProjectSummary, error) {
	projectID, err := requireID("project_id", projectID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("project not found: %s", projectID))
		}
		s.LogError(ctx, err, "Failed to look up project", slog.String("project_id", projectID))
		return nil, err
	}

	var (
		employees   map[string][]domain.EmployeeSummary
		expenses    []domain.Expense
		investments []domain.Investment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.assignmentRepo.ListAssignedEmployeesByProjectIDs(gctx, []string{projectID})
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.analyticsRepo.ListExpensesByProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		investments, err = s.analyticsRepo.ListInvestmentsByProject(gctx, projectID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load project detail", slog.String("project_id", projectID))
		return nil, err
	}

	summary := domain.NewProjectSummary(*project, employees[projectID],
		domain.RollupExpenses(expenses), domain.RollupInvestments(investments))
	return &summary, nil
}
