package domain

import (
	"github.com/shopspring/decimal"
)

// ProfitOrLoss classifies the sign of a net balance.
type ProfitOrLoss string

const (
	Profit ProfitOrLoss = "Profit"
	Loss   ProfitOrLoss = "Loss"
)

// ReviewStatusCounts is a histogram of active expense reviews by status.
type ReviewStatusCounts struct {
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}

// Overview holds system-wide counts of active rows.
type Overview struct {
	TotalProjects      int64              `json:"totalProjects"`
	TotalEmployees     int64              `json:"totalEmployees"`
	TotalInvestors     int64              `json:"totalInvestors"`
	TotalExpenses      int64              `json:"totalExpenses"`
	TotalAssignments   int64              `json:"totalAssignments"`
	ExpenseReviewStats ReviewStatusCounts `json:"expenseReviewStats"`
}

// ExpenseRollup is the sum and count of active expenses for a project.
type ExpenseRollup struct {
	TotalExpense decimal.Decimal `json:"totalExpense"`
	ExpenseCount int64           `json:"expenseCount"`
	Details      []Expense       `json:"details"`
}

// InvestmentRollup is the sum of active investments for a project and the
// number of distinct investors behind them.
type InvestmentRollup struct {
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	InvestorCount   int64           `json:"investorCount"`
	Details         []Investment    `json:"details"`
}

// Balance is derived from the two rollups and never stored.
type Balance struct {
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	NetBalance      decimal.Decimal `json:"netBalance"`
	ProfitOrLoss    ProfitOrLoss    `json:"profitOrLoss"`
}

// NewBalance computes net balance as investment minus expense. A zero net
// balance counts as profit.
func NewBalance(totalInvestment, totalExpense decimal.Decimal) Balance {
	net := totalInvestment.Sub(totalExpense)
	pl := Profit
	if net.IsNegative() {
		pl = Loss
	}
	return Balance{
		TotalInvestment: totalInvestment,
		TotalExpense:    totalExpense,
		NetBalance:      net,
		ProfitOrLoss:    pl,
	}
}

// ProjectSummary is the per-project financial rollup.
type ProjectSummary struct {
	Project     Project           `json:"project"`
	Employees   []EmployeeSummary `json:"employees"`
	Expenses    ExpenseRollup     `json:"expenses"`
	Investments InvestmentRollup  `json:"investments"`
	Balance     Balance           `json:"balance"`
}

// NewProjectSummary assembles a summary and derives its balance from the rollups.
func NewProjectSummary(p Project, employees []EmployeeSummary, expenses ExpenseRollup, investments InvestmentRollup) ProjectSummary {
	if employees == nil {
		employees = []EmployeeSummary{}
	}
	return ProjectSummary{
		Project:     p,
		Employees:   employees,
		Expenses:    expenses,
		Investments: investments,
		Balance:     NewBalance(investments.TotalInvestment, expenses.TotalExpense),
	}
}

// RollupExpenses sums expense line items and keeps them as details.
func RollupExpenses(expenses []Expense) ExpenseRollup {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	if expenses == nil {
		expenses = []Expense{}
	}
	return ExpenseRollup{
		TotalExpense: total,
		ExpenseCount: int64(len(expenses)),
		Details:      expenses,
	}
}

// RollupInvestments sums investment line items, counts distinct investors and
// keeps the line items as details.
func RollupInvestments(investments []Investment) InvestmentRollup {
	total := decimal.Zero
	investors := make(map[string]struct{}, len(investments))
	for _, i := range investments {
		total = total.Add(i.InvestedAmount)
		investors[i.InvestorID] = struct{}{}
	}
	if investments == nil {
		investments = []Investment{}
	}
	return InvestmentRollup{
		TotalInvestment: total,
		InvestorCount:   int64(len(investors)),
		Details:         investments,
	}
}
