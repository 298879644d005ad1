package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/project_finance_app/internal/core/ports/services"
	"github.com/SscSPs/project_finance_app/internal/dto"
	"github.com/SscSPs/project_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

func newAnalyticsHandler(as portssvc.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// registerAnalyticsRoutes registers the read-only dashboard routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := newAnalyticsHandler(analyticsService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/overview", h.getOverview)
		dashboard.GET("/projects/all", h.getAllProjectsOverview)
		dashboard.GET("/project/:project_id", h.getProjectAnalytics)
	}
}

// getOverview godoc
// @Summary Dashboard overview
// @Description Counts of active projects, employees, investors, expenses, assignments and expense reviews by status
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.Overview
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /dashboard/overview [get]
func (h *analyticsHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.analyticsService.GetOverview(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}

// getAllProjectsOverview godoc
// @Summary Summary of every active project
// @Description Per-project employees, expense and investment totals and balance, newest project first
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.ProjectsOverviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /dashboard/projects/all [get]
func (h *analyticsHandler) getAllProjectsOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.analyticsService.GetAllProjectsOverview(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute projects overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectsOverviewResponse(summaries))
}

// getProjectAnalytics godoc
// @Summary Analytics for one project
// @Description Summary of a single active project including expense and investment line items
// @Tags dashboard
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectAnalyticsResponse
// @Failure 400 {object} map[string]string "Malformed project id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /dashboard/project/{project_id} [get]
func (h *analyticsHandler) getProjectAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")

	summary, err := h.analyticsService.GetProjectAnalytics(c.Request.Context(), projectID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute project analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAnalyticsResponse(*summary))
}
