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

const projectColumns = `project_id, name, location, department, sub_department, product, quantity, description,
		estimated_budget, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

// PgxProjectRepository implements portsrepo.ProjectRepositoryFacade using pgx.
type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	defer metrics.ObserveQuery("select", "projects", time.Now())

	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1 AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, wrapDBError("failed to query project", err)
	}
	modelProject, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(fmt.Sprintf("failed to find project by ID %s", projectID), err)
	}

	project := mapping.ToDomainProject(modelProject)
	return &project, nil
}

func (r *PgxProjectRepository) ListActiveProjects(ctx context.Context) ([]domain.Project, error) {
	defer metrics.ObserveQuery("select", "projects", time.Now())

	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, project_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to query projects", err)
	}
	modelProjects, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		return nil, wrapDBError("failed to scan projects", err)
	}
	return mapping.ToDomainProjectSlice(modelProjects), nil
}

func (r *PgxProjectRepository) SoftDeleteProject(ctx context.Context, projectID string, userID string, now time.Time) error {
	defer metrics.ObserveQuery("update", "projects", time.Now())

	query := `
		UPDATE projects
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE project_id = $3 AND deleted_at IS NULL;`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, projectID)
	if err != nil {
		return wrapDBError("failed to soft delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
