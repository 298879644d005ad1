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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPeopleRepository looks up employees, investors, expenses and users.
type PgxPeopleRepository struct {
	BaseRepository
}

func newPgxPeopleRepository(pool *pgxpool.Pool) *PgxPeopleRepository {
	return &PgxPeopleRepository{BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.EmployeeReader = (*PgxPeopleRepository)(nil)
	_ portsrepo.InvestorReader = (*PgxPeopleRepository)(nil)
	_ portsrepo.ExpenseReader  = (*PgxPeopleRepository)(nil)
	_ portsrepo.UserReader     = (*PgxPeopleRepository)(nil)
)

// findActiveIDs runs query with ids as $1 and returns the ids it selected.
func (r *PgxPeopleRepository) findActiveIDs(ctx context.Context, table, query string, ids []string) (map[string]bool, error) {
	defer metrics.ObserveQuery("select", table, time.Now())

	found := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, wrapDBError(fmt.Sprintf("failed to query %s", table), err)
	}
	active, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapDBError(fmt.Sprintf("failed to scan %s ids", table), err)
	}
	for _, id := range active {
		found[id] = true
	}
	return found, nil
}

func (r *PgxPeopleRepository) FindActiveEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]bool, error) {
	return r.findActiveIDs(ctx, "employees", `
		SELECT employee_id::text
		FROM employees
		WHERE employee_id = ANY($1::uuid[]) AND deleted_at IS NULL;`, employeeIDs)
}

func (r *PgxPeopleRepository) FindActiveInvestorIDs(ctx context.Context, investorIDs []string) (map[string]bool, error) {
	return r.findActiveIDs(ctx, "investors", `
		SELECT investor_id::text
		FROM investors
		WHERE investor_id = ANY($1::uuid[]) AND deleted_at IS NULL;`, investorIDs)
}

func (r *PgxPeopleRepository) FindActiveExpenseIDs(ctx context.Context, expenseIDs []string) (map[string]bool, error) {
	return r.findActiveIDs(ctx, "expenses", `
		SELECT expense_id::text
		FROM expenses
		WHERE expense_id = ANY($1::uuid[]) AND deleted_at IS NULL;`, expenseIDs)
}

func (r *PgxPeopleRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	defer metrics.ObserveQuery("select", "expenses", time.Now())

	query := `
		SELECT expense_id, project_id, employee_id, title, description, amount, expense_type, mode_of_payment,
			expense_date, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM expenses
		WHERE expense_id = $1 AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, wrapDBError("failed to query expense", err)
	}
	modelExpense, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find expense by ID %s", expenseID), err)
	}

	expense := mapping.ToDomainExpense(modelExpense)
	return &expense, nil
}

func (r *PgxPeopleRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	// Token subjects are not validated upstream; a non-UUID subject cannot match a row.
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.ErrNotFound
	}
	defer metrics.ObserveQuery("select", "users", time.Now())

	query := `
		SELECT user_id, name, email, phone, role, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&modelUser.UserID,
		&modelUser.Name,
		&modelUser.Email,
		&modelUser.Phone,
		&modelUser.Role,
		&modelUser.CreatedAt,
		&modelUser.CreatedBy,
		&modelUser.LastUpdatedAt,
		&modelUser.LastUpdatedBy,
		&modelUser.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find user by ID %s", userID), err)
	}

	user := mapping.ToDomainUser(modelUser)
	return &user, nil
}
