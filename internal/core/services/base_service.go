package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/SscSPs/project_finance_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.RoleAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeRole checks that the user holds one of the allowed roles.
// Without an authorizer every mutating call is denied.
func (s *BaseService) AuthorizeRole(ctx context.Context, userID string, allowed ...domain.Role) error {
	if s.Authorizer == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No role authorizer configured, denying access",
			slog.String("user_id", userID))
		return apperrors.NewForbiddenError("role authorization is not configured")
	}
	return s.Authorizer.AuthorizeRole(ctx, userID, allowed...)
}
