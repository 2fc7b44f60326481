package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrops/hr-admin-service/internal/domain"
)

// EmployeeRepository manages employee persistence. Reads exclude soft-deleted
// rows.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error)
	CountByDepartment(ctx context.Context, departmentID string) (int64, error)
	ClearDepartment(ctx context.Context, departmentID string) error
	SoftDelete(ctx context.Context, id string) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `id, first_name, last_name, email, phone, position, salary, hire_date, status, department_id, created_at, updated_at`

func scanEmployee(row pgx.Row, emp *domain.Employee) error {
	return row.Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.Position,
		&emp.Salary,
		&emp.HireDate,
		&emp.Status,
		&emp.DepartmentID,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (first_name, last_name, email, phone, position, salary, hire_date, status, department_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Position,
		emp.Salary,
		emp.HireDate,
		emp.Status,
		emp.DepartmentID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET first_name=$1, last_name=$2, email=$3, phone=$4, position=$5,
            salary=$6, hire_date=$7, status=$8, department_id=$9, updated_at=NOW()
        WHERE id=$10 AND deleted_at IS NULL
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Position,
		emp.Salary,
		emp.HireDate,
		emp.Status,
		emp.DepartmentID,
		emp.ID,
	).Scan(&emp.UpdatedAt)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT ` + employeeColumns + `
        FROM employees WHERE id=$1 AND deleted_at IS NULL`
	var emp domain.Employee
	if err := scanEmployee(r.pool.QueryRow(ctx, query, id), &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT ` + employeeColumns + `
        FROM employees WHERE email=$1 AND deleted_at IS NULL`
	var emp domain.Employee
	if err := scanEmployee(r.pool.QueryRow(ctx, query, email), &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT ` + employeeColumns + `
        FROM employees WHERE deleted_at IS NULL
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	const query = `
        SELECT ` + employeeColumns + `
        FROM employees WHERE department_id=$1 AND deleted_at IS NULL
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	const query = `
        SELECT COUNT(*) FROM employees WHERE department_id=$1 AND deleted_at IS NULL`
	var count int64
	if err := r.pool.QueryRow(ctx, query, departmentID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ClearDepartment detaches every employee from the given department. Used
// when a department is soft-deleted so no dangling references remain.
func (r *employeeRepository) ClearDepartment(ctx context.Context, departmentID string) error {
	const query = `
        UPDATE employees SET department_id=NULL, updated_at=NOW()
        WHERE department_id=$1 AND deleted_at IS NULL`
	_, err := r.pool.Exec(ctx, query, departmentID)
	return err
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `
        UPDATE employees SET deleted_at=NOW(), updated_at=NOW()
        WHERE id=$1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}
