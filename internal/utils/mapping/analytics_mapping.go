package mapping

import (
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/SscSPs/project_finance_app/internal/models"
)

// ToDomainOverview converts the dashboard count row to a domain Overview
func ToDomainOverview(m models.OverviewCounts) domain.Overview {
	return domain.Overview{
		TotalProjects:    m.TotalProjects,
		TotalEmployees:   m.TotalEmployees,
		TotalInvestors:   m.TotalInvestors,
		TotalExpenses:    m.TotalExpenses,
		TotalAssignments: m.TotalAssignments,
		ExpenseReviewStats: domain.ReviewStatusCounts{
			Approved: m.ReviewsApproved,
			Pending:  m.ReviewsPending,
			Rejected: m.ReviewsRejected,
		},
	}
}

// ToExpenseRollupMap keys per-project expense totals by project id
func ToExpenseRollupMap(ms []models.ProjectExpenseTotal) map[string]domain.ExpenseRollup {
	out := make(map[string]domain.ExpenseRollup, len(ms))
	for _, m := range ms {
		out[m.ProjectID] = domain.ExpenseRollup{TotalExpense: m.TotalExpense, ExpenseCount: m.ExpenseCount}
	}
	return out
}

// ToInvestmentRollupMap keys per-project investment totals by project id
func ToInvestmentRollupMap(ms []models.ProjectInvestmentTotal) map[string]domain.InvestmentRollup {
	out := make(map[string]domain.InvestmentRollup, len(ms))
	for _, m := range ms {
		out[m.ProjectID] = domain.InvestmentRollup{TotalInvestment: m.TotalInvestment, InvestorCount: m.InvestorCount}
	}
	return out
}
