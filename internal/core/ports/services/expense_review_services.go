package services

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// ExpenseReviewService defines operations on expense reviews
type ExpenseReviewService interface {
	// SubmitReview creates the reviewer's review of an expense, or updates it if one exists.
	// The boolean reports whether an existing review was updated.
	SubmitReview(ctx context.Context, expenseID string, status domain.ReviewStatus, comment string, reviewerID string) (*domain.ExpenseReview, bool, error)
	// SubmitReviews applies the same status and comment to several expenses at once.
	// Nothing is stored if any expense is missing.
	SubmitReviews(ctx context.Context, expenseIDs []string, status domain.ReviewStatus, comment string, reviewerID string) ([]domain.ReviewOutcome, error)
}
