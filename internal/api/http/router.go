package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hrops/hr-admin-service/internal/api/http/handlers"
	"github.com/hrops/hr-admin-service/internal/auth"
	"github.com/hrops/hr-admin-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Departments    *handlers.DepartmentHandler
	Employees      *handlers.EmployeeHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")
	api.Post("/auth/login", cfg.Auth.Login)

	admin := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.UserRoleAdmin))

	departments := admin.Group("/departments")
	departments.Get("/", cfg.Departments.List)
	departments.Get("/:id", cfg.Departments.Get)
	departments.Post("/", cfg.Departments.Create)
	departments.Put("/:id", cfg.Departments.Update)
	departments.Delete("/:id", cfg.Departments.Delete)

	employees := admin.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Get("/department/:departmentId", cfg.Employees.ListByDepartment)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Post("/", cfg.Employees.Create)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)
}
