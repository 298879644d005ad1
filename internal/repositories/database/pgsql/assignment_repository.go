package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_finance_app/internal/models"
	"github.com/SscSPs/project_finance_app/internal/platform/metrics"
	"github.com/SscSPs/project_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAssignmentRepository implements portsrepo.AssignmentRepositoryFacade using pgx.
// Inserts use ON CONFLICT DO NOTHING against the partial unique indexes on
// the active (project, assignee) pair, so concurrent requests for the same
// pair produce exactly one row.
type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(pool *pgxpool.Pool) *PgxAssignmentRepository {
	return &PgxAssignmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

func (r *PgxAssignmentRepository) CreateProjectAssignment(ctx context.Context, a domain.ProjectAssignment) (*domain.ProjectAssignment, error) {
	defer metrics.ObserveQuery("insert", "project_assignments", time.Now())

	query := `
		WITH inserted AS (
			INSERT INTO project_assignments (assignment_id, project_id, employee_id, assigned_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT DO NOTHING
			RETURNING assignment_id, project_id, employee_id, assigned_by, created_at, updated_at
		)
		SELECT i.assignment_id, i.project_id, i.employee_id, i.assigned_by, i.created_at, i.updated_at,
			e.name AS employee_name, e.email AS employee_email, e.phone AS employee_phone, e.role AS employee_role,
			COALESCE(u.name, '') AS assigner_name
		FROM inserted i
		JOIN employees e ON e.employee_id = i.employee_id
		LEFT JOIN users u ON u.user_id = i.assigned_by;`
	rows, err := r.Pool.Query(ctx, query, a.AssignmentID, a.ProjectID, a.EmployeeID, a.AssignedBy, a.CreatedAt)
	if err != nil {
		return nil, wrapDBError("failed to insert project assignment", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ProjectAssignment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee %s already assigned to project %s: %w", a.EmployeeID, a.ProjectID, apperrors.ErrDuplicate)
		}
		return nil, wrapDBError("failed to insert project assignment", err)
	}

	created := mapping.ToDomainProjectAssignment(row)
	return &created, nil
}

func (r *PgxAssignmentRepository) CreateInvestorAssignment(ctx context.Context, a domain.InvestorAssignment) (*domain.InvestorAssignment, error) {
	defer metrics.ObserveQuery("insert", "investor_assignments", time.Now())

	query := `
		WITH inserted AS (
			INSERT INTO investor_assignments (assignment_id, project_id, investor_id, assigned_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT DO NOTHING
			RETURNING assignment_id, project_id, investor_id, assigned_by, created_at, updated_at
		)
		SELECT i.assignment_id, i.project_id, i.investor_id, i.assigned_by, i.created_at, i.updated_at,
			inv.name AS investor_name, inv.email AS investor_email, inv.phone AS investor_phone,
			COALESCE(u.name, '') AS assigner_name
		FROM inserted i
		JOIN investors inv ON inv.investor_id = i.investor_id
		LEFT JOIN users u ON u.user_id = i.assigned_by;`
	rows, err := r.Pool.Query(ctx, query, a.AssignmentID, a.ProjectID, a.InvestorID, a.AssignedBy, a.CreatedAt)
	if err != nil {
		return nil, wrapDBError("failed to insert investor assignment", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.InvestorAssignment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("investor %s already assigned to project %s: %w", a.InvestorID, a.ProjectID, apperrors.ErrDuplicate)
		}
		return nil, wrapDBError("failed to insert investor assignment", err)
	}

	created := mapping.ToDomainInvestorAssignment(row)
	return &created, nil
}

func (r *PgxAssignmentRepository) ListProjectAssignments(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error) {
	defer metrics.ObserveQuery("select", "project_assignments", time.Now())

	query := `
		SELECT pa.assignment_id, pa.project_id, pa.employee_id, pa.assigned_by, pa.created_at, pa.updated_at,
			e.name AS employee_name, e.email AS employee_email, e.phone AS employee_phone, e.role AS employee_role,
			COALESCE(u.name, '') AS assigner_name
		FROM project_assignments pa
		JOIN employees e ON e.employee_id = pa.employee_id AND e.deleted_at IS NULL
		LEFT JOIN users u ON u.user_id = pa.assigned_by
		WHERE pa.project_id = $1 AND pa.deleted_at IS NULL
		ORDER BY pa.created_at, pa.assignment_id;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, wrapDBError("failed to query project assignments", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProjectAssignment])
	if err != nil {
		return nil, wrapDBError("failed to scan project assignments", err)
	}
	return mapping.ToDomainProjectAssignmentSlice(modelRows), nil
}

func (r *PgxAssignmentRepository) ListInvestorAssignments(ctx context.Context, projectID string) ([]domain.InvestorAssignment, error) {
	defer metrics.ObserveQuery("select", "investor_assignments", time.Now())

	query := `
		SELECT ia.assignment_id, ia.project_id, ia.investor_id, ia.assigned_by, ia.created_at, ia.updated_at,
			inv.name AS investor_name, inv.email AS investor_email, inv.phone AS investor_phone,
			COALESCE(u.name, '') AS assigner_name
		FROM investor_assignments ia
		JOIN investors inv ON inv.investor_id = ia.investor_id AND inv.deleted_at IS NULL
		LEFT JOIN users u ON u.user_id = ia.assigned_by
		WHERE ia.project_id = $1 AND ia.deleted_at IS NULL
		ORDER BY ia.created_at, ia.assignment_id;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, wrapDBError("failed to query investor assignments", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InvestorAssignment])
	if err != nil {
		return nil, wrapDBError("failed to scan investor assignments", err)
	}
	return mapping.ToDomainInvestorAssignmentSlice(modelRows), nil
}

func (r *PgxAssignmentRepository) ListAssignedEmployeesByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.EmployeeSummary, error) {
	defer metrics.ObserveQuery("select", "project_assignments", time.Now())

	if len(projectIDs) == 0 {
		return map[string][]domain.EmployeeSummary{}, nil
	}
	query := `
		SELECT pa.project_id::text AS project_id, e.employee_id::text AS employee_id, e.name, e.email, e.phone, e.role
		FROM project_assignments pa
		JOIN employees e ON e.employee_id = pa.employee_id AND e.deleted_at IS NULL
		WHERE pa.project_id = ANY($1::uuid[]) AND pa.deleted_at IS NULL
		ORDER BY pa.created_at, pa.assignment_id;`
	rows, err := r.Pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, wrapDBError("failed to query assigned employees", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AssignedEmployee])
	if err != nil {
		return nil, wrapDBError("failed to scan assigned employees", err)
	}
	return mapping.GroupAssignedEmployees(modelRows), nil
}
