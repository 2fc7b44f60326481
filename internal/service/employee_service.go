package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrops/hr-admin-service/internal/domain"
	"github.com/hrops/hr-admin-service/internal/events"
	"github.com/hrops/hr-admin-service/internal/repository"
	apperrors "github.com/hrops/hr-admin-service/pkg/util"
)

const (
	maxEmployeeNameLen  = 50
	maxEmployeeEmailLen = 100
	maxEmployeePhoneLen = 20
	maxPositionLen      = 100

	hireDateLayout = "2006-01-02"
)

// EmployeeService enforces employee business rules before persistence.
type EmployeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
}

// EmployeeDependencies encapsulates repositories required by the service.
type EmployeeDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		dispatcher:  dispatcher,
	}
}

// EmployeeCreate carries the fields of a creation request. Salary and hire
// date arrive as strings and are parsed by the rule engine.
type EmployeeCreate struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Position     string
	Salary       string
	HireDate     string
	Status       string
	DepartmentID *string
}

// EmployeeUpdate is a partial-update payload. Set fields are applied; unset
// fields are left untouched. Phone and DepartmentID distinguish "set to
// null" (clear) from "not supplied".
type EmployeeUpdate struct {
	FirstName    domain.Optional[string]
	LastName     domain.Optional[string]
	Email        domain.Optional[string]
	Phone        domain.Optional[*string]
	Position     domain.Optional[string]
	Salary       domain.Optional[string]
	HireDate     domain.Optional[string]
	Status       domain.Optional[string]
	DepartmentID domain.Optional[*string]
}

// List returns all non-deleted employees, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return emps, nil
}

// GetByID fetches an employee.
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return emp, nil
}

// ListByDepartment returns the employees of an existing, non-deleted
// department. The department itself must be active; a deleted department is
// NOT_FOUND even if rows still reference it.
func (s *EmployeeService) ListByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": departmentID})
		}
		return nil, apperrors.MapError(err)
	}
	emps, err := s.employees.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return emps, nil
}

// Create validates and persists a new employee. Checks run in a fixed order
// for deterministic error reporting: email uniqueness, department existence,
// then field validation with every violation collected into one error.
func (s *EmployeeService) Create(ctx context.Context, actorID string, in EmployeeCreate) (*domain.Employee, error) {
	if _, err := s.employees.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.NewConflict("employee email already exists", map[string]any{"email": in.Email})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	if in.DepartmentID != nil && *in.DepartmentID != "" {
		if _, err := s.departments.GetByID(ctx, *in.DepartmentID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("department", map[string]any{"id": *in.DepartmentID})
			}
			return nil, apperrors.MapError(err)
		}
	}

	details := map[string]any{}
	validateNameField(details, "first_name", "First name", in.FirstName)
	validateNameField(details, "last_name", "Last name", in.LastName)
	if in.Email == "" {
		details["email"] = "Email is required"
	} else if len(in.Email) > maxEmployeeEmailLen {
		details["email"] = "Email must be at most 100 characters"
	}
	if in.Phone != nil && len(*in.Phone) > maxEmployeePhoneLen {
		details["phone"] = "Phone must be at most 20 characters"
	}
	if in.Position == "" {
		details["position"] = "Position is required"
	} else if len(in.Position) > maxPositionLen {
		details["position"] = "Position must be at most 100 characters"
	}
	salary, ok := parseSalary(in.Salary)
	if !ok {
		details["salary"] = "Salary must be a valid positive number"
	}
	hireDate, ok := parseHireDate(in.HireDate)
	if !ok {
		details["hire_date"] = "Hire date must be a valid date"
	}
	status := domain.EmployeeStatusActive
	if in.Status != "" {
		if !domain.ValidEmployeeStatus(in.Status) {
			details["status"] = "Status must be one of: ACTIVE, INACTIVE"
		} else {
			status = domain.EmployeeStatus(in.Status)
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid employee payload", details)
	}

	var departmentID *string
	if in.DepartmentID != nil && *in.DepartmentID != "" {
		departmentID = in.DepartmentID
	}

	emp := &domain.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Position:     in.Position,
		Salary:       salary,
		HireDate:     hireDate,
		Status:       status,
		DepartmentID: departmentID,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventEmployeeCreated, emp.ID, actorID, events.EmployeePayload{Email: emp.Email, DepartmentID: emp.DepartmentID})
	return emp, nil
}

// Update merges the explicitly-set fields into the employee, re-validating
// only what changed. Clearing the department reference (set to null) is
// honored distinctly from leaving the field out.
func (s *EmployeeService) Update(ctx context.Context, actorID, id string, upd EmployeeUpdate) (*domain.Employee, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Email.Set && upd.Email.Value != emp.Email {
		if existing, err := s.employees.GetByEmail(ctx, upd.Email.Value); err == nil && existing.ID != emp.ID {
			return nil, apperrors.NewConflict("employee email already exists", map[string]any{"email": upd.Email.Value})
		} else if err != nil && err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
	}

	if upd.DepartmentID.Set && upd.DepartmentID.Value != nil {
		changed := emp.DepartmentID == nil || *upd.DepartmentID.Value != *emp.DepartmentID
		if changed {
			if _, err := s.departments.GetByID(ctx, *upd.DepartmentID.Value); err != nil {
				if err == pgx.ErrNoRows {
					return nil, apperrors.NewNotFound("department", map[string]any{"id": *upd.DepartmentID.Value})
				}
				return nil, apperrors.MapError(err)
			}
		}
	}

	details := map[string]any{}
	if upd.FirstName.Set {
		validateNameField(details, "first_name", "First name", upd.FirstName.Value)
	}
	if upd.LastName.Set {
		validateNameField(details, "last_name", "Last name", upd.LastName.Value)
	}
	if upd.Email.Set {
		if upd.Email.Value == "" {
			details["email"] = "Email is required"
		} else if len(upd.Email.Value) > maxEmployeeEmailLen {
			details["email"] = "Email must be at most 100 characters"
		}
	}
	if upd.Phone.Set && upd.Phone.Value != nil && len(*upd.Phone.Value) > maxEmployeePhoneLen {
		details["phone"] = "Phone must be at most 20 characters"
	}
	if upd.Position.Set {
		if upd.Position.Value == "" {
			details["position"] = "Position is required"
		} else if len(upd.Position.Value) > maxPositionLen {
			details["position"] = "Position must be at most 100 characters"
		}
	}
	var salary float64
	if upd.Salary.Set {
		var ok bool
		salary, ok = parseSalary(upd.Salary.Value)
		if !ok {
			details["salary"] = "Salary must be a valid positive number"
		}
	}
	var hireDate time.Time
	if upd.HireDate.Set {
		var ok bool
		hireDate, ok = parseHireDate(upd.HireDate.Value)
		if !ok {
			details["hire_date"] = "Hire date must be a valid date"
		}
	}
	if upd.Status.Set && !domain.ValidEmployeeStatus(upd.Status.Value) {
		details["status"] = "Status must be one of: ACTIVE, INACTIVE"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid employee payload", details)
	}

	if upd.FirstName.Set {
		emp.FirstName = upd.FirstName.Value
	}
	if upd.LastName.Set {
		emp.LastName = upd.LastName.Value
	}
	if upd.Email.Set {
		emp.Email = upd.Email.Value
	}
	if upd.Phone.Set {
		emp.Phone = upd.Phone.Value
	}
	if upd.Position.Set {
		emp.Position = upd.Position.Value
	}
	if upd.Salary.Set {
		emp.Salary = salary
	}
	if upd.HireDate.Set {
		emp.HireDate = hireDate
	}
	if upd.Status.Set {
		emp.Status = domain.EmployeeStatus(upd.Status.Value)
	}
	if upd.DepartmentID.Set {
		emp.DepartmentID = upd.DepartmentID.Value
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventEmployeeUpdated, emp.ID, actorID, events.EmployeePayload{Email: emp.Email, DepartmentID: emp.DepartmentID})
	return emp, nil
}

// Delete soft-deletes the employee. Deleting twice yields NOT_FOUND.
func (s *EmployeeService) Delete(ctx context.Context, actorID, id string) error {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employees.SoftDelete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventEmployeeDeleted, id, actorID, events.EmployeePayload{Email: emp.Email, DepartmentID: emp.DepartmentID})
	return nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, entityID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		EntityID:  entityID,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func validateNameField(details map[string]any, key, label, value string) {
	if value == "" {
		details[key] = label + " is required"
	} else if len(value) > maxEmployeeNameLen {
		details[key] = label + " must be at most 50 characters"
	}
}

func parseSalary(raw string) (float64, bool) {
	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) || salary < 0 {
		return 0, false
	}
	return salary, true
}

func parseHireDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(hireDateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
