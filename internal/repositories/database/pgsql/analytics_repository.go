package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_finance_app/internal/models"
	"github.com/SscSPs/project_finance_app/internal/platform/metrics"
	"github.com/SscSPs/project_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAnalyticsRepository runs the read-only dashboard aggregations.
type PgxAnalyticsRepository struct {
	BaseRepository
}

func newPgxAnalyticsRepository(pool *pgxpool.Pool) *PgxAnalyticsRepository {
	return &PgxAnalyticsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

func (r *PgxAnalyticsRepository) GetOverviewCounts(ctx context.Context) (*domain.Overview, error) {
	defer metrics.ObserveQuery("aggregate", "overview", time.Now())

	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE deleted_at IS NULL) AS total_projects,
			(SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL) AS total_employees,
			(SELECT COUNT(*) FROM investors WHERE deleted_at IS NULL) AS total_investors,
			(SELECT COUNT(*) FROM expenses WHERE deleted_at IS NULL) AS total_expenses,
			(SELECT COUNT(*) FROM project_assignments WHERE deleted_at IS NULL) AS total_assignments,
			(SELECT COUNT(*) FROM expense_reviews WHERE deleted_at IS NULL AND status = 'approved') AS reviews_approved,
			(SELECT COUNT(*) FROM expense_reviews WHERE deleted_at IS NULL AND status = 'pending') AS reviews_pending,
			(SELECT COUNT(*) FROM expense_reviews WHERE deleted_at IS NULL AND status = 'rejected') AS reviews_rejected;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to query overview counts", err)
	}
	counts, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.OverviewCounts])
	if err != nil {
		return nil, wrapDBError("failed to scan overview counts", err)
	}

	overview := mapping.ToDomainOverview(counts)
	return &overview, nil
}

func (r *PgxAnalyticsRepository) GetExpenseTotalsByProject(ctx context.Context, projectIDs []string) (map[string]domain.ExpenseRollup, error) {
	defer metrics.ObserveQuery("aggregate", "expenses", time.Now())

	if len(projectIDs) == 0 {
		return map[string]domain.ExpenseRollup{}, nil
	}
	query := `
		SELECT project_id::text AS project_id,
			COALESCE(SUM(amount), 0) AS total_expense,
			COUNT(*) AS expense_count
		FROM expenses
		WHERE project_id = ANY($1::uuid[]) AND deleted_at IS NULL
		GROUP BY project_id;`
	rows, err := r.Pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, wrapDBError("failed to aggregate expenses", err)
	}
	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProjectExpenseTotal])
	if err != nil {
		return nil, wrapDBError("failed to scan expense totals", err)
	}
	return mapping.ToExpenseRollupMap(totals), nil
}

func (r *PgxAnalyticsRepository) GetInvestmentTotalsByProject(ctx context.Context, projectIDs []string) (map[string]domain.InvestmentRollup, error) {
	defer metrics.ObserveQuery("aggregate", "investments", time.Now())

	if len(projectIDs) == 0 {
		return map[string]domain.InvestmentRollup{}, nil
	}
	query := `
		SELECT project_id::text AS project_id,
			COALESCE(SUM(invested_amount), 0) AS total_investment,
			COUNT(DISTINCT investor_id) AS investor_count
		FROM investments
		WHERE project_id = ANY($1::uuid[]) AND deleted_at IS NULL
		GROUP BY project_id;`
	rows, err := r.Pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, wrapDBError("failed to aggregate investments", err)
	}
	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProjectInvestmentTotal])
	if err != nil {
		return nil, wrapDBError("failed to scan investment totals", err)
	}
	return mapping.ToInvestmentRollupMap(totals), nil
}

func (r *PgxAnalyticsRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	defer metrics.ObserveQuery("select", "expenses", time.Now())

	query := `
		SELECT expense_id, project_id, employee_id, title, description, amount, expense_type, mode_of_payment,
			expense_date, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM expenses
		WHERE project_id = $1 AND deleted_at IS NULL
		ORDER BY expense_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, wrapDBError("failed to query project expenses", err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, wrapDBError("failed to scan project expenses", err)
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxAnalyticsRepository) ListInvestmentsByProject(ctx context.Context, projectID string) ([]domain.Investment, error) {
	defer metrics.ObserveQuery("select", "investments", time.Now())

	query := `
		SELECT i.investment_id, i.investor_id, COALESCE(inv.name, '') AS investor_name, i.project_id,
			i.invested_amount, i.mode_of_payment, i.investment_type, i.investment_date, i.description,
			i.created_at, i.created_by, i.last_updated_at, i.last_updated_by, i.deleted_at
		FROM investments i
		LEFT JOIN investors inv ON inv.investor_id = i.investor_id
		WHERE i.project_id = $1 AND i.deleted_at IS NULL
		ORDER BY i.investment_date DESC, i.created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, wrapDBError("failed to query project investments", err)
	}
	modelInvestments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Investment])
	if err != nil {
		return nil, wrapDBError("failed to scan project investments", err)
	}
	return mapping.ToDomainInvestmentSlice(modelInvestments), nil
}
