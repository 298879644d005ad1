package dto

import (
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// SubmitExpenseReviewRequest records the caller's review of an expense.
// Status defaults to pending when omitted.
type SubmitExpenseReviewRequest struct {
	ExpenseID string              `json:"expense_id" binding:"required,uuid"`
	Status    domain.ReviewStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	Comment   string              `json:"comment" binding:"max=2000"`
}

// ExpenseReviewResponse is the stored review and whether it replaced an earlier one.
type ExpenseReviewResponse struct {
	ReviewID      string              `json:"reviewID"`
	ExpenseID     string              `json:"expenseID"`
	ReviewerID    string              `json:"reviewerID"`
	Status        domain.ReviewStatus `json:"status"`
	Comment       string              `json:"comment,omitempty"`
	Updated       bool                `json:"updated"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToExpenseReviewResponse converts a domain review.
func ToExpenseReviewResponse(r *domain.ExpenseReview, updated bool) ExpenseReviewResponse {
	return ExpenseReviewResponse{
		ReviewID:      r.ReviewID,
		ExpenseID:     r.ExpenseID,
		ReviewerID:    r.ReviewerID,
		Status:        r.Status,
		Comment:       r.Comment,
		Updated:       updated,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// SubmitExpenseReviewsRequest applies one verdict to several expenses.
// expense_id accepts a single id or an array of ids.
type SubmitExpenseReviewsRequest struct {
	ExpenseIDs IDList              `json:"expense_id" binding:"idlist"`
	Status     domain.ReviewStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	Comment    string              `json:"comment" binding:"max=2000"`
}

// ExpenseReviewsResponse reports every review stored by a batch submission.
type ExpenseReviewsResponse struct {
	Created int                     `json:"created"`
	Updated int                     `json:"updated"`
	Reviews []ExpenseReviewResponse `json:"reviews"`
}

// ToExpenseReviewsResponse converts batch outcomes, keeping their order.
func ToExpenseReviewsResponse(outcomes []domain.ReviewOutcome) ExpenseReviewsResponse {
	resp := ExpenseReviewsResponse{Reviews: make([]ExpenseReviewResponse, len(outcomes))}
	for i := range outcomes {
		resp.Reviews[i] = ToExpenseReviewResponse(&outcomes[i].Review, outcomes[i].Updated)
		if outcomes[i].Updated {
			resp.Updated++
		} else {
			resp.Created++
		}
	}
	return resp
}
