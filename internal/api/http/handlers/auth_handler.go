package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hrops/hr-admin-service/internal/api/dto"
	"github.com/hrops/hr-admin-service/internal/service"
	apperrors "github.com/hrops/hr-admin-service/pkg/util"
)

// AuthHandler exposes authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := map[string]any{}
	if req.Email == "" {
		details["email"] = "Email is required"
	}
	if req.Password == "" {
		details["password"] = "Password is required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid payload", details)
	}

	user, token, exp, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{ID: user.ID, Email: user.Email, Role: string(user.Role)},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}
