package domain

// Role is the system-wide role of a user.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleReviewer   Role = "reviewer"
	RoleAccountant Role = "accountant"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleReviewer, RoleAccountant:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	UserID string `json:"userID"` // Primary Key (e.g., UUID)
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"role"`
	AuditFields
	SoftDelete
}

// UserSummary is the slice of a user shown next to records the user touched.
type UserSummary struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
}
