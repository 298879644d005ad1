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

// assignmentHandler handles HTTP requests that link employees and investors to projects.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{
		assignmentService: as,
	}
}

// registerAssignmentRoutes registers routes related to project assignments.
// Creating links is limited to accountants; reading them is open to any authenticated caller.
func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)
	accountantOnly := middleware.RequireRole(domain.RoleAccountant)

	investors := rg.Group("/investor-assignments")
	{
		investors.POST("", accountantOnly, h.assignInvestors)
		investors.GET("/:project_id", h.getAssignedInvestors)
	}

	employees := rg.Group("/project-assignments")
	{
		employees.POST("", accountantOnly, h.assignEmployees)
		employees.GET("/project/:project_id", h.getAssignedEmployees)
	}
}

// assignInvestors godoc
// @Summary Assign investors to a project
// @Description Links one or more investors to a project. Pairs that are already linked are skipped.
// @Tags assignments
// @Accept  json
// @Produce  json
// @Param   assignment body dto.AssignInvestorsRequest true "Project and investor ids"
// @Success 201 {object} dto.InvestorAssignmentsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an accountant"
// @Failure 404 {object} map[string]string "Project or investor not found"
// @Failure 409 {object} map[string]string "All investors already assigned"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /investor-assignments [post]
func (h *assignmentHandler) assignInvestors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignInvestorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignInvestors", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("project_id", req.ProjectID))
	logger.Info("Received request to assign investors", slog.Int("requested", len(req.InvestorIDs)))

	created, err := h.assignmentService.AssignInvestors(c.Request.Context(), req.ProjectID, req.InvestorIDs.Strings(), callerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to assign investors")
		return
	}

	logger.Info("Investors assigned", slog.Int("created", len(created)))
	c.JSON(http.StatusCreated, dto.ToInvestorAssignmentsResponse("Investors assigned successfully", created))
}

// getAssignedInvestors godoc
// @Summary List investors assigned to a project
// @Tags assignments
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.InvestorAssignmentsResponse
// @Failure 400 {object} map[string]string "Malformed project id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve assignments"
// @Security BearerAuth
// @Router /investor-assignments/{project_id} [get]
func (h *assignmentHandler) getAssignedInvestors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")
	logger = logger.With(slog.String("project_id", projectID))

	links, err := h.assignmentService.GetAssignedInvestors(c.Request.Context(), projectID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve investor assignments")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestorAssignmentsResponse("", links))
}

// assignEmployees godoc
// @Summary Assign employees to a project
// @Description Links one or more employees to a project. Pairs that are already linked are skipped.
// @Tags assignments
// @Accept  json
// @Produce  json
// @Param   assignment body dto.AssignEmployeesRequest true "Project and employee ids"
// @Success 201 {object} dto.ProjectAssignmentsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an accountant"
// @Failure 404 {object} map[string]string "Project or employee not found"
// @Failure 409 {object} map[string]string "All employees already assigned"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /project-assignments [post]
func (h *assignmentHandler) assignEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignEmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("project_id", req.ProjectID))
	logger.Info("Received request to assign employees", slog.Int("requested", len(req.EmployeeIDs)))

	created, err := h.assignmentService.AssignEmployees(c.Request.Context(), req.ProjectID, req.EmployeeIDs.Strings(), callerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to assign employees")
		return
	}

	logger.Info("Employees assigned", slog.Int("created", len(created)))
	c.JSON(http.StatusCreated, dto.ToProjectAssignmentsResponse("Employees assigned successfully", created))
}

// getAssignedEmployees godoc
// @Summary List employees assigned to a project
// @Tags assignments
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectAssignmentsResponse
// @Failure 400 {object} map[string]string "Malformed project id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve assignments"
// @Security BearerAuth
// @Router /project-assignments/project/{project_id} [get]
func (h *assignmentHandler) getAssignedEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")
	logger = logger.With(slog.String("project_id", projectID))

	links, err := h.assignmentService.GetAssignedEmployees(c.Request.Context(), projectID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve employee assignments")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAssignmentsResponse("", links))
}
