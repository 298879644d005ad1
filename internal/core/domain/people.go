package domain

// EmployeeSummary holds the display attributes of an employee, a staff member
// who can be assigned to projects and book expenses.
type EmployeeSummary struct {
	EmployeeID string `json:"employeeID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
}

// InvestorSummary holds the display attributes of an investor. Investors fund
// projects through Investment records.
type InvestorSummary struct {
	InvestorID string `json:"investorID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}
