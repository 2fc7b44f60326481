package dto

import (
	"time"

	"github.com/hrops/hr-admin-service/internal/domain"
)

// CreateEmployeeRequest payload. Salary and hire date are strings parsed by
// the employee service.
type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Position     string  `json:"position"`
	Salary       string  `json:"salary"`
	HireDate     string  `json:"hire_date"`
	Status       string  `json:"status"`
	DepartmentID *string `json:"department_id"`
}

// UpdateEmployeeRequest is a partial payload. Absent keys leave fields
// untouched; phone and department_id set to null clear the value.
type UpdateEmployeeRequest struct {
	FirstName    domain.Optional[string]  `json:"first_name"`
	LastName     domain.Optional[string]  `json:"last_name"`
	Email        domain.Optional[string]  `json:"email"`
	Phone        domain.Optional[*string] `json:"phone"`
	Position     domain.Optional[string]  `json:"position"`
	Salary       domain.Optional[string]  `json:"salary"`
	HireDate     domain.Optional[string]  `json:"hire_date"`
	Status       domain.Optional[string]  `json:"status"`
	DepartmentID domain.Optional[*string] `json:"department_id"`
}

// EmployeeResponse representation.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Position     string    `json:"position"`
	Salary       float64   `json:"salary"`
	HireDate     string    `json:"hire_date"`
	Status       string    `json:"status"`
	DepartmentID *string   `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
