package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// ProjectReader defines read operations for project data.
// Soft-deleted projects are invisible to every method.
type ProjectReader interface {
	// FindProjectByID retrieves an active project. Returns apperrors.ErrNotFound otherwise.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListActiveProjects returns all active projects, newest first.
	ListActiveProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SoftDeleteProject sets the deletion marker on an active project.
	// Returns apperrors.ErrNotFound if no active project matched.
	SoftDeleteProject(ctx context.Context, projectID string, userID string, now time.Time) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
