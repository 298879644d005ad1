package dto

import (
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// AssignInvestorsRequest links one or more investors to a project.
// investor_id may be a single id or an array of ids.
type AssignInvestorsRequest struct {
	ProjectID   string `json:"project_id" binding:"required,uuid"`
	InvestorIDs IDList `json:"investor_id" binding:"idlist" swaggertype:"array,string"`
}

// AssignEmployeesRequest links one or more employees to a project.
// employee_id may be a single id or an array of ids.
type AssignEmployeesRequest struct {
	ProjectID   string `json:"project_id" binding:"required,uuid"`
	EmployeeIDs IDList `json:"employee_id" binding:"idlist" swaggertype:"array,string"`
}

// UserSummaryResponse identifies the user who created a link.
type UserSummaryResponse struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

// InvestorAssignmentResponse is one project <-> investor link.
type InvestorAssignmentResponse struct {
	AssignmentID string                  `json:"assignmentID"`
	ProjectID    string                  `json:"projectID"`
	InvestorID   string                  `json:"investorID"`
	AssignedBy   string                  `json:"assignedBy"`
	CreatedAt    time.Time               `json:"createdAt"`
	Investor     *domain.InvestorSummary `json:"investor,omitempty"`
	Assigner     *UserSummaryResponse    `json:"assigner,omitempty"`
}

// ProjectAssignmentResponse is one project <-> employee link.
type ProjectAssignmentResponse struct {
	AssignmentID string                  `json:"assignmentID"`
	ProjectID    string                  `json:"projectID"`
	EmployeeID   string                  `json:"employeeID"`
	AssignedBy   string                  `json:"assignedBy"`
	CreatedAt    time.Time               `json:"createdAt"`
	Employee     *domain.EmployeeSummary `json:"employee,omitempty"`
	Assigner     *UserSummaryResponse    `json:"assigner,omitempty"`
}

// InvestorAssignmentsResponse wraps a list of investor links.
type InvestorAssignmentsResponse struct {
	Message     string                       `json:"message,omitempty"`
	Count       int                          `json:"count"`
	Assignments []InvestorAssignmentResponse `json:"assignments"`
}

// ProjectAssignmentsResponse wraps a list of employee links.
type ProjectAssignmentsResponse struct {
	Message     string                      `json:"message,omitempty"`
	Count       int                         `json:"count"`
	Assignments []ProjectAssignmentResponse `json:"assignments"`
}

func toUserSummaryResponse(u *domain.UserSummary) *UserSummaryResponse {
	if u == nil {
		return nil
	}
	return &UserSummaryResponse{UserID: u.UserID, Name: u.Name}
}

// ToInvestorAssignmentsResponse converts investor links to their response shape.
func ToInvestorAssignmentsResponse(message string, links []domain.InvestorAssignment) InvestorAssignmentsResponse {
	out := make([]InvestorAssignmentResponse, len(links))
	for i, l := range links {
		out[i] = InvestorAssignmentResponse{
			AssignmentID: l.AssignmentID,
			ProjectID:    l.ProjectID,
			InvestorID:   l.InvestorID,
			AssignedBy:   l.AssignedBy,
			CreatedAt:    l.CreatedAt,
			Investor:     l.Investor,
			Assigner:     toUserSummaryResponse(l.Assigner),
		}
	}
	return InvestorAssignmentsResponse{Message: message, Count: len(out), Assignments: out}
}

// ToProjectAssignmentsResponse converts employee links to their response shape.
func ToProjectAssignmentsResponse(message string, links []domain.ProjectAssignment) ProjectAssignmentsResponse {
	out := make([]ProjectAssignmentResponse, len(links))
	for i, l := range links {
		out[i] = ProjectAssignmentResponse{
			AssignmentID: l.AssignmentID,
			ProjectID:    l.ProjectID,
			EmployeeID:   l.EmployeeID,
			AssignedBy:   l.AssignedBy,
			CreatedAt:    l.CreatedAt,
			Employee:     l.Employee,
			Assigner:     toUserSummaryResponse(l.Assigner),
		}
	}
	return ProjectAssignmentsResponse{Message: message, Count: len(out), Assignments: out}
}
