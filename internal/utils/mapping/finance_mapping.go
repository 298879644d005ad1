package mapping

import (
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/SscSPs/project_finance_app/internal/models"
)

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		ProjectID:     m.ProjectID,
		EmployeeID:    m.EmployeeID,
		Title:         m.Title,
		Description:   m.Description,
		Amount:        m.Amount,
		ExpenseType:   domain.ExpenseType(m.ExpenseType),
		ModeOfPayment: domain.PaymentMode(m.ModeOfPayment),
		ExpenseDate:   m.ExpenseDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		SoftDelete:    domain.SoftDelete{DeletedAt: m.DeletedAt},
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:   m.InvestmentID,
		InvestorID:     m.InvestorID,
		InvestorName:   m.InvestorName,
		ProjectID:      m.ProjectID,
		InvestedAmount: m.InvestedAmount,
		ModeOfPayment:  domain.PaymentMode(m.ModeOfPayment),
		InvestmentType: domain.InvestmentType(m.InvestmentType),
		InvestmentDate: m.InvestmentDate,
		Description:    m.Description,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		SoftDelete:     domain.SoftDelete{DeletedAt: m.DeletedAt},
	}
}

// ToDomainInvestmentSlice converts a slice of model Investments to a slice of domain Investments
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}

// ToModelExpenseReview converts a domain ExpenseReview to a model ExpenseReview
func ToModelExpenseReview(d domain.ExpenseReview) models.ExpenseReview {
	return models.ExpenseReview{
		ReviewID:    d.ReviewID,
		ExpenseID:   d.ExpenseID,
		ReviewerID:  d.ReviewerID,
		Status:      string(d.Status),
		Comment:     d.Comment,
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainExpenseReview converts a model ExpenseReview to a domain ExpenseReview
func ToDomainExpenseReview(m models.ExpenseReview) domain.ExpenseReview {
	return domain.ExpenseReview{
		ReviewID:    m.ReviewID,
		ExpenseID:   m.ExpenseID,
		ReviewerID:  m.ReviewerID,
		Status:      domain.ReviewStatus(m.Status),
		Comment:     m.Comment,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		SoftDelete:  domain.SoftDelete{DeletedAt: m.DeletedAt},
	}
}
