package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// SoftDelete marks a row as hidden from default reads without erasing it.
type SoftDelete struct {
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsActive reports whether the row carries no deletion marker.
func (s SoftDelete) IsActive() bool {
	return s.DeletedAt == nil
}
