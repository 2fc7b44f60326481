package dto

import (
	"time"

	"github.com/hrops/hr-admin-service/internal/domain"
)

// CreateDepartmentRequest payload.
type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest is a partial payload; absent keys leave the field
// untouched.
type UpdateDepartmentRequest struct {
	Name        domain.Optional[string] `json:"name"`
	Description domain.Optional[string] `json:"description"`
}

// DepartmentResponse representation.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
