package services

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// RoleAuthorizerSvc re-checks a caller's role inside the core, independent of
// whatever the transport layer already decided.
type RoleAuthorizerSvc interface {
	// AuthorizeRole resolves the user's role from the store and returns
	// apperrors.ErrForbidden unless it is one of allowed.
	AuthorizeRole(ctx context.Context, userID string, allowed ...domain.Role) error
}
