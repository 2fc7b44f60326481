package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hrops/hr-admin-service/internal/domain"
	apperrors "github.com/hrops/hr-admin-service/pkg/util"
)

// RequireRole ensures the authenticated principal carries one of the allowed
// roles. With no roles given, any authenticated principal passes. Missing or
// insufficient credentials both surface as UNAUTHORIZED.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewUnauthorized("insufficient permissions")
		}
		return c.Next()
	}
}
