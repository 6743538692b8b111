package domain

import "time"

// UserRole distinguishes NGO staff from donors.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleDonor UserRole = "DONOR"
)

// User represents an account holder: a donor or an NGO administrator.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
