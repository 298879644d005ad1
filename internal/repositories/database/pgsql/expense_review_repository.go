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

// PgxExpenseReviewRepository implements portsrepo.ExpenseReviewRepository using pgx.
type PgxExpenseReviewRepository struct {
	BaseRepository
}

func newPgxExpenseReviewRepository(pool *pgxpool.Pool) *PgxExpenseReviewRepository {
	return &PgxExpenseReviewRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseReviewRepository = (*PgxExpenseReviewRepository)(nil)

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// upsertReviewQuery relies on the partial unique index over the active
// (expense_id, reviewer_id) pair. xmax is non-zero on the returned row only
// when the conflict branch updated an existing row.
const upsertReviewQuery = `
	INSERT INTO expense_reviews (review_id, expense_id, reviewer_id, status, comment,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (expense_id, reviewer_id) WHERE deleted_at IS NULL
	DO UPDATE SET
		status = EXCLUDED.status,
		comment = CASE WHEN EXCLUDED.comment <> '' THEN EXCLUDED.comment ELSE expense_reviews.comment END,
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by
	RETURNING review_id, expense_id, reviewer_id, status, comment,
		created_at, created_by, last_updated_at, last_updated_by, deleted_at, (xmax <> 0) AS updated;`

func upsertReview(ctx context.Context, q rowQuerier, review domain.ExpenseReview) (domain.ExpenseReview, bool, error) {
	m := mapping.ToModelExpenseReview(review)

	var saved models.ExpenseReview
	var updated bool
	err := q.QueryRow(ctx, upsertReviewQuery,
		m.ReviewID,
		m.ExpenseID,
		m.ReviewerID,
		m.Status,
		m.Comment,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(
		&saved.ReviewID,
		&saved.ExpenseID,
		&saved.ReviewerID,
		&saved.Status,
		&saved.Comment,
		&saved.CreatedAt,
		&saved.CreatedBy,
		&saved.LastUpdatedAt,
		&saved.LastUpdatedBy,
		&saved.DeletedAt,
		&updated,
	)
	if err != nil {
		return domain.ExpenseReview{}, false, err
	}
	return mapping.ToDomainExpenseReview(saved), updated, nil
}

func (r *PgxExpenseReviewRepository) UpsertReview(ctx context.Context, review domain.ExpenseReview) (*domain.ExpenseReview, bool, error) {
	defer metrics.ObserveQuery("upsert", "expense_reviews", time.Now())

	saved, updated, err := upsertReview(ctx, r.Pool, review)
	if err != nil {
		return nil, false, wrapDBError("failed to upsert expense review", err)
	}
	return &saved, updated, nil
}

func (r *PgxExpenseReviewRepository) UpsertReviews(ctx context.Context, reviews []domain.ExpenseReview) ([]domain.ReviewOutcome, error) {
	defer metrics.ObserveQuery("upsert_batch", "expense_reviews", time.Now())

	outcomes := make([]domain.ReviewOutcome, 0, len(reviews))
	err := pgx.BeginFunc(ctx, r.Pool, func(tx pgx.Tx) error {
		for _, review := range reviews {
			saved, updated, err := upsertReview(ctx, tx, review)
			if err != nil {
				return err
			}
			outcomes = append(outcomes, domain.ReviewOutcome{Review: saved, Updated: updated})
		}
		return nil
	})
	if err != nil {
		return nil, wrapDBError("failed to upsert expense reviews", err)
	}
	return outcomes, nil
}
