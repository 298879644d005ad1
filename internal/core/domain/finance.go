package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how money changed hands.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "cash"
	PaymentBankTransfer PaymentMode = "bank_transfer"
	PaymentUPI          PaymentMode = "upi"
	PaymentCheque       PaymentMode = "cheque"
	PaymentOther        PaymentMode = "other"
)

// ExpenseType classifies an expense.
type ExpenseType string

const (
	ExpenseAdvance   ExpenseType = "advance"
	ExpenseRecurring ExpenseType = "recurring"
)

// Expense is money spent on a project by an employee.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	ProjectID     string          `json:"projectID"`
	EmployeeID    string          `json:"employeeID"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"` // >= 0
	ExpenseType   ExpenseType     `json:"expenseType"`
	ModeOfPayment PaymentMode     `json:"modeOfPayment"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	AuditFields
	SoftDelete
}

// InvestmentType tells whether an investor funded the project for themselves or on behalf of someone else.
type InvestmentType string

const (
	InvestmentSelf  InvestmentType = "self"
	InvestmentOther InvestmentType = "other"
)

// Investment is money put into a project by an investor.
type Investment struct {
	InvestmentID   string          `json:"investmentID"`
	InvestorID     string          `json:"investorID"`
	InvestorName   string          `json:"investorName"`
	ProjectID      string          `json:"projectID"`
	InvestedAmount decimal.Decimal `json:"investedAmount"` // >= 0
	ModeOfPayment  PaymentMode     `json:"modeOfPayment"`
	InvestmentType InvestmentType  `json:"investmentType"`
	InvestmentDate time.Time       `json:"investmentDate"`
	Description    string          `json:"description,omitempty"`
	AuditFields
	SoftDelete
}

// ReviewStatus is the verdict a reviewer gave an expense.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// IsValid reports whether s is a known review status.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// ExpenseReview is a reviewer's verdict on an expense. At most one active
// review exists per (expense, reviewer) pair.
type ExpenseReview struct {
	ReviewID   string       `json:"reviewID"`
	ExpenseID  string       `json:"expenseID"`
	ReviewerID string       `json:"reviewerID"`
	Status     ReviewStatus `json:"status"`
	Comment    string       `json:"comment,omitempty"`
	AuditFields
	SoftDelete
}

// ReviewOutcome is one stored review from a batch and whether it replaced
// an earlier review by the same reviewer.
type ReviewOutcome struct {
	Review  ExpenseReview `json:"review"`
	Updated bool          `json:"updated"`
}
