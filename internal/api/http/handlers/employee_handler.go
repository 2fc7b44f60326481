package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hrops/hr-admin-service/internal/api/dto"
	"github.com/hrops/hr-admin-service/internal/domain"
	"github.com/hrops/hr-admin-service/internal/service"
	apperrors "github.com/hrops/hr-admin-service/pkg/util"
)

// EmployeeHandler exposes employee CRUD endpoints.
type EmployeeHandler struct {
	employees *service.EmployeeService
}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// List handles GET /employees.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	emps, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponses(emps)})
}

// Get handles GET /employees/:id.
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	emp, err := h.employees.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// ListByDepartment handles GET /employees/department/:departmentId.
func (h *EmployeeHandler) ListByDepartment(c *fiber.Ctx) error {
	emps, err := h.employees.ListByDepartment(c.UserContext(), c.Params("departmentId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponses(emps)})
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	actor, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	emp, err := h.employees.Create(c.UserContext(), actor.UserID, service.EmployeeCreate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
		Status:       req.Status,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Update handles PUT /employees/:id.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	actor, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	emp, err := h.employees.Update(c.UserContext(), actor.UserID, c.Params("id"), service.EmployeeUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
		Status:       req.Status,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Delete handles DELETE /employees/:id.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	actor, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), actor.UserID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Position:     emp.Position,
		Salary:       emp.Salary,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Status:       string(emp.Status),
		DepartmentID: emp.DepartmentID,
		CreatedAt:    emp.CreatedAt,
		UpdatedAt:    emp.UpdatedAt,
	}
}

func employeeResponses(emps []domain.Employee) []dto.EmployeeResponse {
	resp := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, employeeResponse(&emps[i]))
	}
	return resp
}
