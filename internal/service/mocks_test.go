package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hrops/hr-admin-service/internal/domain"
)

// mockUserRepository simulates user persistence during testing.
type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

// mockDepartmentRepository simulates department persistence during testing.
type mockDepartmentRepository struct {
	CreateFunc     func(ctx context.Context, dept *domain.Department) error
	UpdateFunc     func(ctx context.Context, dept *domain.Department) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Department, error)
	GetByNameFunc  func(ctx context.Context, name string) (*domain.Department, error)
	ListFunc       func(ctx context.Context) ([]domain.Department, error)
	SoftDeleteFunc func(ctx context.Context, id string) error
}

func (m *mockDepartmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dept)
	}
	dept.ID = "dept-1"
	return nil
}

func (m *mockDepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, dept)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockDepartmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) SoftDelete(ctx context.Context, id string) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}

// mockEmployeeRepository simulates employee persistence during testing.
type mockEmployeeRepository struct {
	CreateFunc            func(ctx context.Context, emp *domain.Employee) error
	UpdateFunc            func(ctx context.Context, emp *domain.Employee) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.Employee, error)
	ListFunc              func(ctx context.Context) ([]domain.Employee, error)
	ListByDepartmentFunc  func(ctx context.Context, departmentID string) ([]domain.Employee, error)
	CountByDepartmentFunc func(ctx context.Context, departmentID string) (int64, error)
	ClearDepartmentFunc   func(ctx context.Context, departmentID string) error
	SoftDeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, emp)
	}
	emp.ID = "emp-1"
	return nil
}

func (m *mockEmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, emp)
	}
	return nil
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) ListByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	if m.ListByDepartmentFunc != nil {
		return m.ListByDepartmentFunc(ctx, departmentID)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	if m.CountByDepartmentFunc != nil {
		return m.CountByDepartmentFunc(ctx, departmentID)
	}
	return 0, nil
}

func (m *mockEmployeeRepository) ClearDepartment(ctx context.Context, departmentID string) error {
	if m.ClearDepartmentFunc != nil {
		return m.ClearDepartmentFunc(ctx, departmentID)
	}
	return nil
}

func (m *mockEmployeeRepository) SoftDelete(ctx context.Context, id string) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}
