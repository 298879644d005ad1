package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
)

// roleAuthorizer resolves a caller's role from the users table.
type roleAuthorizer struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewRoleAuthorizer creates a RoleAuthorizerSvc backed by the user store.
func NewRoleAuthorizer(userRepo portsrepo.UserReader) portssvc.RoleAuthorizerSvc {
	return &roleAuthorizer{userRepo: userRepo}
}

var _ portssvc.RoleAuthorizerSvc = (*roleAuthorizer)(nil)

func (a *roleAuthorizer) AuthorizeRole(ctx context.Context, userID string, allowed ...domain.Role) error {
	if userID == "" {
		return apperrors.NewAppError(http.StatusUnauthorized, "missing caller identity", apperrors.ErrUnauthorized)
	}

	user, err := a.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			a.LogDebug(ctx, "Caller is not an active user", slog.String("user_id", userID))
			return apperrors.NewForbiddenError(fmt.Sprintf("user %s is not active", userID))
		}
		a.LogError(ctx, err, "Failed to resolve caller role", slog.String("user_id", userID))
		return err
	}

	if !slices.Contains(allowed, user.Role) {
		a.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("user_role", string(user.Role)),
			slog.Any("allowed_roles", allowed))
		return apperrors.NewForbiddenError(fmt.Sprintf("role %q may not perform this action", user.Role))
	}
	return nil
}
