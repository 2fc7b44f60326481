package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrops/hr-admin-service/internal/domain"
	"github.com/hrops/hr-admin-service/internal/events"
	"github.com/hrops/hr-admin-service/internal/repository"
	apperrors "github.com/hrops/hr-admin-service/pkg/util"
)

const maxDepartmentNameLen = 100

// DepartmentService enforces department business rules before persistence.
type DepartmentService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	dispatcher  events.Dispatcher
}

// DepartmentDependencies encapsulates repositories required by the service.
type DepartmentDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	EmployeeRepo   repository.EmployeeRepository
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies, dispatcher events.Dispatcher) *DepartmentService {
	return &DepartmentService{
		departments: deps.DepartmentRepo,
		employees:   deps.EmployeeRepo,
		dispatcher:  dispatcher,
	}
}

// DepartmentUpdate is a partial-update payload. Only fields explicitly set
// are applied; unset fields are left untouched.
type DepartmentUpdate struct {
	Name        domain.Optional[string]
	Description domain.Optional[string]
}

// List returns all non-deleted departments, newest first.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return depts, nil
}

// GetByID fetches a department.
func (s *DepartmentService) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// Create adds a department after checking name constraints and uniqueness.
// The uniqueness check here is a fast path; the partial unique index on
// departments.name is the backstop for racing creates.
func (s *DepartmentService) Create(ctx context.Context, actorID, name, description string) (*domain.Department, error) {
	if details := validateDepartmentName(name); len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid department payload", details)
	}

	if _, err := s.departments.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("department name already exists", map[string]any{"name": name})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	dept := &domain.Department{
		Name:        name,
		Description: description,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventDepartmentCreated, dept.ID, actorID, events.DepartmentPayload{Name: dept.Name})
	return dept, nil
}

// Update merges the explicitly-set fields into the department. A payload
// with no fields set is a no-op that still returns the current record.
func (s *DepartmentService) Update(ctx context.Context, actorID, id string, upd DepartmentUpdate) (*domain.Department, error) {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name.Set && upd.Name.Value != dept.Name {
		if details := validateDepartmentName(upd.Name.Value); len(details) > 0 {
			return nil, apperrors.NewValidationError("invalid department payload", details)
		}
		if existing, err := s.departments.GetByName(ctx, upd.Name.Value); err == nil && existing.ID != dept.ID {
			return nil, apperrors.NewConflict("department name already exists", map[string]any{"name": upd.Name.Value})
		} else if err != nil && err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
		dept.Name = upd.Name.Value
	}
	if upd.Description.Set {
		dept.Description = upd.Description.Value
	}

	if err := s.departments.Update(ctx, dept); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventDepartmentUpdated, dept.ID, actorID, events.DepartmentPayload{Name: dept.Name})
	return dept, nil
}

// Delete soft-deletes the department and detaches its employees. Employees
// themselves are never removed: the reference is a weak one.
func (s *DepartmentService) Delete(ctx context.Context, actorID, id string) error {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	detached, err := s.employees.CountByDepartment(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}

	if err := s.departments.SoftDelete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	if err := s.employees.ClearDepartment(ctx, id); err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventDepartmentDeleted, id, actorID, events.DepartmentPayload{Name: dept.Name, EmployeesDetached: detached})
	return nil
}

func (s *DepartmentService) publish(ctx context.Context, eventType events.EventType, entityID, actorID string, payload interface{}) {
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

func validateDepartmentName(name string) map[string]any {
	details := map[string]any{}
	if name == "" {
		details["name"] = "Name is required"
	} else if len(name) > maxDepartmentNameLen {
		details["name"] = "Name must be at most 100 characters"
	}
	return details
}
