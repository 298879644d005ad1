package repositories

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// AnalyticsRepository defines the read-only aggregate queries behind the dashboard.
// Every figure is computed from active rows at call time.
type AnalyticsRepository interface {
	// GetOverviewCounts counts active rows per entity and the review status histogram.
	GetOverviewCounts(ctx context.Context) (*domain.Overview, error)

	// GetExpenseTotalsByProject sums active expenses grouped by project id.
	// Projects with no expenses are absent from the map.
	GetExpenseTotalsByProject(ctx context.Context, projectIDs []string) (map[string]domain.ExpenseRollup, error)

	// GetInvestmentTotalsByProject sums active investments grouped by project id.
	// Projects with no investments are absent from the map.
	GetInvestmentTotalsByProject(ctx context.Context, projectIDs []string) (map[string]domain.InvestmentRollup, error)

	// ListExpensesByProject returns the active expense line items of a project.
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error)

	// ListInvestmentsByProject returns the active investment line items of a project.
	ListInvestmentsByProject(ctx context.Context, projectID string) ([]domain.Investment, error)
}
