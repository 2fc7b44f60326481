package domain

import "time"

// EmployeeStatus is the employment state of a record.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// ValidEmployeeStatus reports whether raw names a known status.
func ValidEmployeeStatus(raw string) bool {
	switch EmployeeStatus(raw) {
	case EmployeeStatusActive, EmployeeStatusInactive:
		return true
	}
	return false
}

// Employee is a personnel record. Phone and DepartmentID are nullable.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Position     string
	Salary       float64
	HireDate     time.Time
	Status       EmployeeStatus
	DepartmentID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
