package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/SscSPs/project_finance_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	accountant := uuid.NewString()
	projectID := uuid.NewString()
	accountantOnly := []domain.Role{domain.RoleAccountant}

	t.Run("soft deletes", func(t *testing.T) {
		repo := new(MockProjectRepository)
		authorizer := new(MockRoleAuthorizer)
		authorizer.On("AuthorizeRole", ctx, accountant, accountantOnly).Return(nil)
		repo.On("SoftDeleteProject", ctx, projectID, accountant, mock.AnythingOfType("time.Time")).Return(nil).Once()

		err := services.NewProjectService(repo, authorizer).DeleteProject(ctx, projectID, accountant)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("stamps deletion with the injected clock", func(t *testing.T) {
		fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
		repo := new(MockProjectRepository)
		authorizer := new(MockRoleAuthorizer)
		authorizer.On("AuthorizeRole", ctx, accountant, accountantOnly).Return(nil)
		repo.On("SoftDeleteProject", ctx, projectID, accountant, fixed).Return(nil).Once()

		svc := services.NewProjectService(repo, authorizer, services.WithProjectClock(func() time.Time { return fixed }))
		err := svc.DeleteProject(ctx, projectID, accountant)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("already deleted", func(t *testing.T) {
		repo := new(MockProjectRepository)
		authorizer := new(MockRoleAuthorizer)
		authorizer.On("AuthorizeRole", ctx, accountant, accountantOnly).Return(nil)
		repo.On("SoftDeleteProject", ctx, projectID, accountant, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound)

		err := services.NewProjectService(repo, authorizer).DeleteProject(ctx, projectID, accountant)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), projectID)
	})

	t.Run("reviewer forbidden", func(t *testing.T) {
		repo := new(MockProjectRepository)
		authorizer := new(MockRoleAuthorizer)
		authorizer.On("AuthorizeRole", ctx, accountant, accountantOnly).Return(apperrors.NewForbiddenError("nope"))

		err := services.NewProjectService(repo, authorizer).DeleteProject(ctx, projectID, accountant)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		repo.AssertNotCalled(t, "SoftDeleteProject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
