package services

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// AnalyticsService computes dashboard rollups. All methods are pure reads.
type AnalyticsService interface {
	// GetOverview returns system-wide counts of active rows.
	GetOverview(ctx context.Context) (*domain.Overview, error)

	// GetAllProjectsOverview returns a summary per active project, newest first.
	GetAllProjectsOverview(ctx context.Context) ([]domain.ProjectSummary, error)

	// GetProjectAnalytics returns the summary of one active project including line items.
	GetProjectAnalytics(ctx context.Context, projectID string) (*domain.ProjectSummary, error)
}
