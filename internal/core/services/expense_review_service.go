package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type expenseReviewService struct {
	BaseService
	expenseRepo portsrepo.ExpenseReader
	reviewRepo  portsrepo.ExpenseReviewRepository
	now         func() time.Time
}

// NewExpenseReviewService creates a new expense review service.
func NewExpenseReviewService(expenseRepo portsrepo.ExpenseReader, reviewRepo portsrepo.ExpenseReviewRepository, authorizer portssvc.RoleAuthorizerSvc) portssvc.ExpenseReviewService {
	return &expenseReviewService{
		BaseService: BaseService{Authorizer: authorizer},
		expenseRepo: expenseRepo,
		reviewRepo:  reviewRepo,
		now:         time.Now,
	}
}

var _ portssvc.ExpenseReviewService = (*expenseReviewService)(nil)

func (s *expenseReviewService) SubmitReview(ctx context.Context, expenseID string, status domain.ReviewStatus, comment string, reviewerID string) (*domain.ExpenseReview, bool, error) {
	if err := s.AuthorizeRole(ctx, reviewerID, domain.RoleReviewer, domain.RoleSuperAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to review expenses", slog.String("user_id", reviewerID))
		return nil, false, err
	}

	expenseID, err := requireID("expense_id", expenseID)
	if err != nil {
		return nil, false, err
	}
	status, err = reviewStatusOrDefault(status)
	if err != nil {
		return nil, false, err
	}

	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, apperrors.NewNotFoundError(fmt.Sprintf("expense not found: %s", expenseID))
		}
		s.LogError(ctx, err, "Failed to look up expense", slog.String("expense_id", expenseID))
		return nil, false, err
	}

	review := s.newReview(expenseID, status, comment, reviewerID)
	saved, updated, err := s.reviewRepo.UpsertReview(ctx, review)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense review",
			slog.String("expense_id", expenseID),
			slog.String("reviewer_id", reviewerID))
		return nil, false, err
	}

	s.LogInfo(ctx, "Expense review saved",
		slog.String("expense_id", expenseID),
		slog.String("review_id", saved.ReviewID),
		slog.String("status", string(saved.Status)),
		slog.Bool("updated", updated))
	return saved, updated, nil
}

func (s *expenseReviewService) SubmitReviews(ctx context.Context, expenseIDs []string, status domain.ReviewStatus, comment string, reviewerID string) ([]domain.ReviewOutcome, error) {
	if err := s.AuthorizeRole(ctx, reviewerID, domain.RoleReviewer, domain.RoleSuperAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to review expenses", slog.String("user_id", reviewerID))
		return nil, err
	}

	ids, err := normalizeIDs("expense_id", expenseIDs)
	if err != nil {
		return nil, err
	}
	status, err = reviewStatusOrDefault(status)
	if err != nil {
		return nil, err
	}

	active, err := s.expenseRepo.FindActiveExpenseIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up expenses", slog.Int("count", len(ids)))
		return nil, err
	}
	for _, id := range ids {
		if !active[id] {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense not found: %s", id))
		}
	}

	reviews := make([]domain.ExpenseReview, len(ids))
	for i, id := range ids {
		reviews[i] = s.newReview(id, status, comment, reviewerID)
	}

	outcomes, err := s.reviewRepo.UpsertReviews(ctx, reviews)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense reviews",
			slog.Int("count", len(reviews)),
			slog.String("reviewer_id", reviewerID))
		return nil, err
	}

	updated := 0
	for _, o := range outcomes {
		if o.Updated {
			updated++
		}
	}
	s.LogInfo(ctx, "Expense reviews saved",
		slog.String("reviewer_id", reviewerID),
		slog.String("status", string(status)),
		slog.Int("created", len(outcomes)-updated),
		slog.Int("updated", updated))
	return outcomes, nil
}

func (s *expenseReviewService) newReview(expenseID string, status domain.ReviewStatus, comment, reviewerID string) domain.ExpenseReview {
	now := s.now()
	return domain.ExpenseReview{
		ReviewID:   uuid.NewString(),
		ExpenseID:  expenseID,
		ReviewerID: reviewerID,
		Status:     status,
		Comment:    strings.TrimSpace(comment),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     reviewerID,
			LastUpdatedAt: now,
			LastUpdatedBy: reviewerID,
		},
	}
}

// reviewStatusOrDefault treats an empty status as pending.
func reviewStatusOrDefault(status domain.ReviewStatus) (domain.ReviewStatus, error) {
	if status == "" {
		return domain.ReviewPending, nil
	}
	if !status.IsValid() {
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("invalid review status %q", status))
	}
	return status, nil
}
