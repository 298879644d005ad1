package services

import "context"

// ProjectService defines the project operations the core owns.
type ProjectService interface {
	// DeleteProject soft-deletes a project. Only accountants may do this.
	DeleteProject(ctx context.Context, projectID string, requestingUserID string) error
}
