package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// Project is a construction/finance project that expenses, investments and
// assignments hang off.
type Project struct {
	ProjectID       string          `json:"projectID"`
	Name            string          `json:"name"` // unique among active projects
	Location        string          `json:"location"`
	Department      string          `json:"department"`
	SubDepartment   string          `json:"subDepartment"`
	Product         string          `json:"product"`
	Quantity        int             `json:"quantity"`
	Description     string          `json:"description"`
	EstimatedBudget decimal.Decimal `json:"estimatedBudget"`
	StartDate       *time.Time      `json:"startDate,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	Status          ProjectStatus   `json:"status"`
	AuditFields
	SoftDelete
}
