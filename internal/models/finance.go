package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	ProjectID     string          `db:"project_id"`
	EmployeeID    string          `db:"employee_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	ExpenseType   string          `db:"expense_type"`
	ModeOfPayment string          `db:"mode_of_payment"`
	ExpenseDate   time.Time       `db:"expense_date"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// Investment is a row of the investments table joined with the investor's name.
type Investment struct {
	InvestmentID   string          `db:"investment_id"`
	InvestorID     string          `db:"investor_id"`
	InvestorName   string          `db:"investor_name"`
	ProjectID      string          `db:"project_id"`
	InvestedAmount decimal.Decimal `db:"invested_amount"`
	ModeOfPayment  string          `db:"mode_of_payment"`
	InvestmentType string          `db:"investment_type"`
	InvestmentDate time.Time       `db:"investment_date"`
	Description    string          `db:"description"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// ExpenseReview is a row of the expense_reviews table.
type ExpenseReview struct {
	ReviewID   string `db:"review_id"`
	ExpenseID  string `db:"expense_id"`
	ReviewerID string `db:"reviewer_id"`
	Status     string `db:"status"`
	Comment    string `db:"comment"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
