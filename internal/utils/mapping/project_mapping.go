package mapping

import (
	"github.com/SscSPs/project_finance_app/internal/core/domain"
	"github.com/SscSPs/project_finance_app/internal/models"
)

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:       m.ProjectID,
		Name:            m.Name,
		Location:        m.Location,
		Department:      m.Department,
		SubDepartment:   m.SubDepartment,
		Product:         m.Product,
		Quantity:        m.Quantity,
		Description:     m.Description,
		EstimatedBudget: m.EstimatedBudget,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Status:          domain.ProjectStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		SoftDelete:      domain.SoftDelete{DeletedAt: m.DeletedAt},
	}
}

// ToDomainProjectSlice converts a slice of model Projects to a slice of domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
