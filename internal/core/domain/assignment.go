package domain

import "time"

// ProjectAssignment links an employee to a project.
// At most one active row exists per (project, employee) pair.
type ProjectAssignment struct {
	AssignmentID string           `json:"assignmentID"`
	ProjectID    string           `json:"projectID"`
	EmployeeID   string           `json:"employeeID"`
	AssignedBy   string           `json:"assignedBy"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Employee     *EmployeeSummary `json:"employee,omitempty"`
	Assigner     *UserSummary     `json:"assigner,omitempty"`
}

// InvestorAssignment links an investor to a project.
// At most one active row exists per (project, investor) pair.
type InvestorAssignment struct {
	AssignmentID string           `json:"assignmentID"`
	ProjectID    string           `json:"projectID"`
	InvestorID   string           `json:"investorID"`
	AssignedBy   string           `json:"assignedBy"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Investor     *InvestorSummary `json:"investor,omitempty"`
	Assigner     *UserSummary     `json:"assigner,omitempty"`
}
