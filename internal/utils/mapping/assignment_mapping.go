package mapping

import (
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/SscSPs/project_finance_app/internal/models"
)

// ToDomainProjectAssignment converts a joined assignment row, attaching the
// employee and assigner display attributes.
func ToDomainProjectAssignment(m models.ProjectAssignment) domain.ProjectAssignment {
	return domain.ProjectAssignment{
		AssignmentID: m.AssignmentID,
		ProjectID:    m.ProjectID,
		EmployeeID:   m.EmployeeID,
		AssignedBy:   m.AssignedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Employee: &domain.EmployeeSummary{
			EmployeeID: m.EmployeeID,
			Name:       m.EmployeeName,
			Email:      m.EmployeeEmail,
			Phone:      m.EmployeePhone,
			Role:       m.EmployeeRole,
		},
		Assigner: &domain.UserSummary{UserID: m.AssignedBy, Name: m.AssignerName},
	}
}

// ToDomainProjectAssignmentSlice converts a slice of joined assignment rows
func ToDomainProjectAssignmentSlice(ms []models.ProjectAssignment) []domain.ProjectAssignment {
	ds := make([]domain.ProjectAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProjectAssignment(m)
	}
	return ds
}

// ToDomainInvestorAssignment converts a joined assignment row, attaching the
// investor and assigner display attributes.
func ToDomainInvestorAssignment(m models.InvestorAssignment) domain.InvestorAssignment {
	return domain.InvestorAssignment{
		AssignmentID: m.AssignmentID,
		ProjectID:    m.ProjectID,
		InvestorID:   m.InvestorID,
		AssignedBy:   m.AssignedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Investor: &domain.InvestorSummary{
			InvestorID: m.InvestorID,
			Name:       m.InvestorName,
			Email:      m.InvestorEmail,
			Phone:      m.InvestorPhone,
		},
		Assigner: &domain.UserSummary{UserID: m.AssignedBy, Name: m.AssignerName},
	}
}

// ToDomainInvestorAssignmentSlice converts a slice of joined assignment rows
func ToDomainInvestorAssignmentSlice(ms []models.InvestorAssignment) []domain.InvestorAssignment {
	ds := make([]domain.InvestorAssignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestorAssignment(m)
	}
	return ds
}

// GroupAssignedEmployees groups assigned employee rows by project id,
// keeping row order within each project.
func GroupAssignedEmployees(ms []models.AssignedEmployee) map[string][]domain.EmployeeSummary {
	out := make(map[string][]domain.EmployeeSummary)
	for _, m := range ms {
		out[m.ProjectID] = append(out[m.ProjectID], domain.EmployeeSummary{
			EmployeeID: m.EmployeeID,
			Name:       m.Name,
			Email:      m.Email,
			Phone:      m.Phone,
			Role:       m.Role,
		})
	}
	return out
}
