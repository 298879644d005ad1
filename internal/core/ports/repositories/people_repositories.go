package repositories

import (
	"context"

	"github.com/SscSPs/project_finance_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindActiveEmployeeIDs returns the subset of ids that reference active employees.
	FindActiveEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]bool, error)
}

// InvestorReader defines read operations for investor data
type InvestorReader interface {
	// FindActiveInvestorIDs returns the subset of ids that reference active investors.
	FindActiveInvestorIDs(ctx context.Context, investorIDs []string) (map[string]bool, error)
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an active expense. Returns apperrors.ErrNotFound otherwise.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	// FindActiveExpenseIDs returns the subset of ids that reference active expenses.
	FindActiveExpenseIDs(ctx context.Context, expenseIDs []string) (map[string]bool, error)
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves an active user. Returns apperrors.ErrNotFound otherwise.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
