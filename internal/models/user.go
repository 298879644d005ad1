package models

import (
	"time"
)

// User is a row of the users table.
type User struct {
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	Role   string `db:"role"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
