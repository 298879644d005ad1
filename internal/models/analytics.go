package models

import "github.com/shopspring/decimal"

// ProjectExpenseTotal is one row of the per-project expense aggregation.
type ProjectExpenseTotal struct {
	ProjectID    string          `db:"project_id"`
	TotalExpense decimal.Decimal `db:"total_expense"`
	ExpenseCount int64           `db:"expense_count"`
}

// ProjectInvestmentTotal is one row of the per-project investment aggregation.
type ProjectInvestmentTotal struct {
	ProjectID       string          `db:"project_id"`
	TotalInvestment decimal.Decimal `db:"total_investment"`
	InvestorCount   int64           `db:"investor_count"`
}

// OverviewCounts is the single row returned by the dashboard count query.
type OverviewCounts struct {
	TotalProjects    int64 `db:"total_projects"`
	TotalEmployees   int64 `db:"total_employees"`
	TotalInvestors   int64 `db:"total_investors"`
	TotalExpenses    int64 `db:"total_expenses"`
	TotalAssignments int64 `db:"total_assignments"`
	ReviewsApproved  int64 `db:"reviews_approved"`
	ReviewsPending   int64 `db:"reviews_pending"`
	ReviewsRejected  int64 `db:"reviews_rejected"`
}
