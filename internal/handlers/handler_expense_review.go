package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/SscSPs/project_finance_app/internal/dto"
	"github.com/SscSPs/project_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseReviewHandler struct {
	reviewService portssvc.ExpenseReviewService
}

func newExpenseReviewHandler(rs portssvc.ExpenseReviewService) *expenseReviewHandler {
	return &expenseReviewHandler{
		reviewService: rs,
	}
}

func registerExpenseReviewRoutes(rg *gin.RouterGroup, reviewService portssvc.ExpenseReviewService) {
	h := newExpenseReviewHandler(reviewService)

	reviews := rg.Group("/expense-reviews")
	{
		reviews.POST("", middleware.RequireRole(domain.RoleReviewer, domain.RoleSuperAdmin), h.submitReview)
		reviews.POST("/bulk", middleware.RequireRole(domain.RoleReviewer, domain.RoleSuperAdmin), h.submitReviews)
	}
}

// submitReview godoc
// @Summary Review an expense
// @Description Records the caller's review of an expense. A second submission by the same reviewer updates the earlier one.
// @Tags expense-reviews
// @Accept  json
// @Produce  json
// @Param   review body dto.SubmitExpenseReviewRequest true "Review"
// @Success 201 {object} dto.ExpenseReviewResponse "Review created"
// @Success 200 {object} dto.ExpenseReviewResponse "Existing review updated"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a reviewer"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expense-reviews [post]
func (h *expenseReviewHandler) submitReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitExpenseReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitExpenseReview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reviewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Reviewer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("expense_id", req.ExpenseID))
	review, updated, err := h.reviewService.SubmitReview(c.Request.Context(), req.ExpenseID, req.Status, req.Comment, reviewerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to submit expense review")
		return
	}

	status := http.StatusCreated
	if updated {
		status = http.StatusOK
	}
	logger.Info("Expense review stored", slog.String("review_id", review.ReviewID), slog.Bool("updated", updated))
	c.JSON(status, dto.ToExpenseReviewResponse(review, updated))
}

// submitReviews godoc
// @Summary Review several expenses
// @Description Records the same verdict for every listed expense in one transaction. Nothing is stored if any expense is missing.
// @Tags expense-reviews
// @Accept  json
// @Produce  json
// @Param   reviews body dto.SubmitExpenseReviewsRequest true "Reviews"
// @Success 200 {object} dto.ExpenseReviewsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a reviewer"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /expense-reviews/bulk [post]
func (h *expenseReviewHandler) submitReviews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitExpenseReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitExpenseReviews", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reviewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Reviewer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	outcomes, err := h.reviewService.SubmitReviews(c.Request.Context(), req.ExpenseIDs.Strings(), req.Status, req.Comment, reviewerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to submit expense reviews")
		return
	}

	resp := dto.ToExpenseReviewsResponse(outcomes)
	logger.Info("Expense reviews stored", slog.Int("created", resp.Created), slog.Int("updated", resp.Updated))
	c.JSON(http.StatusOK, resp)
}
