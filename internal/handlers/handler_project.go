package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/SscSPs/project_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	projectService portssvc.ProjectService
}

func newProjectHandler(ps portssvc.ProjectService) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectService) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.DELETE("/:project_id", middleware.RequireRole(domain.RoleAccountant), h.deleteProject)
	}
}

// deleteProject godoc
// @Summary Delete a project
// @Description Soft-deletes a project. Its expenses, investments and assignments are kept.
// @Tags projects
// @Param   project_id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Malformed project id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an accountant"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, callerID); err != nil {
		respondWithError(c, logger, err, "Failed to delete project")
		return
	}

	logger.Info("Project deleted", slog.String("project_id", projectID))
	c.Status(http.StatusNoContent)
}
