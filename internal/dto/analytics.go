package dto

import (
	"time"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectDescriptor is the project part of a dashboard summary.
type ProjectDescriptor struct {
	ProjectID       string               `json:"projectID"`
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	Department      string               `json:"department"`
	SubDepartment   string               `json:"subDepartment"`
	Product         string               `json:"product"`
	EstimatedBudget decimal.Decimal      `json:"estimatedBudget"`
	StartDate       *time.Time           `json:"startDate,omitempty"`
	EndDate         *time.Time           `json:"endDate,omitempty"`
	Status          domain.ProjectStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ExpenseLineItem is one expense in a project's detail view.
type ExpenseLineItem struct {
	ExpenseID     string             `json:"expenseID"`
	Title         string             `json:"title"`
	EmployeeID    string             `json:"employeeID"`
	Amount        decimal.Decimal    `json:"amount"`
	ExpenseType   domain.ExpenseType `json:"expenseType"`
	ModeOfPayment domain.PaymentMode `json:"modeOfPayment"`
	ExpenseDate   time.Time          `json:"expenseDate"`
}

// InvestmentLineItem is one investment in a project's detail view.
type InvestmentLineItem struct {
	InvestmentID   string                `json:"investmentID"`
	InvestorID     string                `json:"investorID"`
	InvestorName   string                `json:"investorName"`
	InvestedAmount decimal.Decimal       `json:"investedAmount"`
	ModeOfPayment  domain.PaymentMode    `json:"modeOfPayment"`
	InvestmentType domain.InvestmentType `json:"investmentType"`
	InvestmentDate time.Time             `json:"investmentDate"`
}

// ExpenseSummary is the expense rollup of a project.
type ExpenseSummary struct {
	TotalExpense decimal.Decimal `json:"totalExpense"`
	ExpenseCount int64           `json:"expenseCount"`
}

// InvestmentSummary is the investment rollup of a project.
type InvestmentSummary struct {
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	InvestorCount   int64           `json:"investorCount"`
}

// ExpenseDetail is the expense rollup plus its line items. Details is always
// present, as [] for a project with no expenses.
type ExpenseDetail struct {
	ExpenseSummary
	Details []ExpenseLineItem `json:"details"`
}

// InvestmentDetail is the investment rollup plus its line items.
type InvestmentDetail struct {
	InvestmentSummary
	Details []InvestmentLineItem `json:"details"`
}

// ProjectSummaryResponse is the dashboard view of one project, as listed by
// the all-projects overview.
type ProjectSummaryResponse struct {
	Project     ProjectDescriptor        `json:"project"`
	Employees   []domain.EmployeeSummary `json:"employees"`
	Expenses    ExpenseSummary           `json:"expenses"`
	Investments InvestmentSummary        `json:"investments"`
	Balance     domain.Balance           `json:"balance"`
}

// ProjectAnalyticsResponse is the single-project analytics view.
type ProjectAnalyticsResponse struct {
	Project     ProjectDescriptor        `json:"project"`
	Employees   []domain.EmployeeSummary `json:"employees"`
	Expenses    ExpenseDetail            `json:"expenses"`
	Investments InvestmentDetail         `json:"investments"`
	Balance     domain.Balance           `json:"balance"`
}

// ProjectsOverviewResponse lists the dashboard view of every active project.
type ProjectsOverviewResponse struct {
	Count    int                      `json:"count"`
	Projects []ProjectSummaryResponse `json:"projects"`
}

func toProjectDescriptor(p domain.Project) ProjectDescriptor {
	return ProjectDescriptor{
		ProjectID:       p.ProjectID,
		Name:            p.Name,
		Location:        p.Location,
		Department:      p.Department,
		SubDepartment:   p.SubDepartment,
		Product:         p.Product,
		EstimatedBudget: p.EstimatedBudget,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
	}
}

func nonNilEmployees(employees []domain.EmployeeSummary) []domain.EmployeeSummary {
	if employees == nil {
		return []domain.EmployeeSummary{}
	}
	return employees
}

// ToProjectSummaryResponse converts a domain summary without line items.
func ToProjectSummaryResponse(s domain.ProjectSummary) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		Project:   toProjectDescriptor(s.Project),
		Employees: nonNilEmployees(s.Employees),
		Expenses: ExpenseSummary{
			TotalExpense: s.Expenses.TotalExpense,
			ExpenseCount: s.Expenses.ExpenseCount,
		},
		Investments: InvestmentSummary{
			TotalInvestment: s.Investments.TotalInvestment,
			InvestorCount:   s.Investments.InvestorCount,
		},
		Balance: s.Balance,
	}
}

// ToProjectAnalyticsResponse converts a domain summary with its line items.
func ToProjectAnalyticsResponse(s domain.ProjectSummary) ProjectAnalyticsResponse {
	summary := ToProjectSummaryResponse(s)
	resp := ProjectAnalyticsResponse{
		Project:   summary.Project,
		Employees: summary.Employees,
		Expenses: ExpenseDetail{
			ExpenseSummary: summary.Expenses,
			Details:        make([]ExpenseLineItem, len(s.Expenses.Details)),
		},
		Investments: InvestmentDetail{
			InvestmentSummary: summary.Investments,
			Details:           make([]InvestmentLineItem, len(s.Investments.Details)),
		},
		Balance: summary.Balance,
	}

	for i, e := range s.Expenses.Details {
		resp.Expenses.Details[i] = ExpenseLineItem{
			ExpenseID:     e.ExpenseID,
			Title:         e.Title,
			EmployeeID:    e.EmployeeID,
			Amount:        e.Amount,
			ExpenseType:   e.ExpenseType,
			ModeOfPayment: e.ModeOfPayment,
			ExpenseDate:   e.ExpenseDate,
		}
	}
	for i, inv := range s.Investments.Details {
		resp.Investments.Details[i] = InvestmentLineItem{
			InvestmentID:   inv.InvestmentID,
			InvestorID:     inv.InvestorID,
			InvestorName:   inv.InvestorName,
			InvestedAmount: inv.InvestedAmount,
			ModeOfPayment:  inv.ModeOfPayment,
			InvestmentType: inv.InvestmentType,
			InvestmentDate: inv.InvestmentDate,
		}
	}
	return resp
}

// ToProjectsOverviewResponse converts the all-projects overview.
func ToProjectsOverviewResponse(summaries []domain.ProjectSummary) ProjectsOverviewResponse {
	out := make([]ProjectSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = ToProjectSummaryResponse(s)
	}
	return ProjectsOverviewResponse{Count: len(out), Projects: out}
}
