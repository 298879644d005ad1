package repositories

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// ExpenseReviewRepository defines write operations for expense reviews
type ExpenseReviewRepository interface {
	// UpsertReview inserts the review or, when an active review exists for the
	// same (expense, reviewer) pair, updates it. The boolean reports whether an
	// existing row was updated.
	UpsertReview(ctx context.Context, review domain.ExpenseReview) (*domain.ExpenseReview, bool, error)
	// UpsertReviews applies UpsertReview to every review in one transaction.
	// Either all reviews are stored or none are.
	UpsertReviews(ctx context.Context, reviews []domain.ExpenseReview) ([]domain.ReviewOutcome, error)
}
