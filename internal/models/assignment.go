package models

import "time"

// ProjectAssignment is a project_assignments row joined with the employee's
// display columns and the assigning user's name.
type ProjectAssignment struct {
	AssignmentID  string    `db:"assignment_id"`
	ProjectID     string    `db:"project_id"`
	EmployeeID    string    `db:"employee_id"`
	AssignedBy    string    `db:"assigned_by"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	EmployeeName  string    `db:"employee_name"`
	EmployeeEmail string    `db:"employee_email"`
	EmployeePhone string    `db:"employee_phone"`
	EmployeeRole  string    `db:"employee_role"`
	AssignerName  string    `db:"assigner_name"`
}

// InvestorAssignment is an investor_assignments row joined with the
// investor's display columns and the assigning user's name.
type InvestorAssignment struct {
	AssignmentID  string    `db:"assignment_id"`
	ProjectID     string    `db:"project_id"`
	InvestorID    string    `db:"investor_id"`
	AssignedBy    string    `db:"assigned_by"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	InvestorName  string    `db:"investor_name"`
	InvestorEmail string    `db:"investor_email"`
	InvestorPhone string    `db:"investor_phone"`
	AssignerName  string    `db:"assigner_name"`
}

// AssignedEmployee is one employee assigned to a project, keyed by project.
type AssignedEmployee struct {
	ProjectID  string `db:"project_id"`
	EmployeeID string `db:"employee_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Role       string `db:"role"`
}
