package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a row of the projects table.
type Project struct {
	ProjectID       string          `db:"project_id"`
	Name            string          `db:"name"`
	Location        string          `db:"location"`
	Department      string          `db:"department"`
	SubDepartment   string          `db:"sub_department"`
	Product         string          `db:"product"`
	Quantity        int             `db:"quantity"`
	Description     string          `db:"description"`
	EstimatedBudget decimal.Decimal `db:"estimated_budget"`
	StartDate       *time.Time      `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"`
	Status          string          `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
