package domain

import "time"

// UserRole enumerates roles a credential holder may carry.
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
)

// User is the domain model for accounts that authenticate against the API.
// Users are provisioned out of band (see cmd/seed) and read-only here.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
