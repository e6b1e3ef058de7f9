package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "harmonia_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError valida o papel autenticado contra a
// allow-list da rota. Em caso de recusa o handler nunca roda.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helper.LocalUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identidade sem papel definido.")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Você não tem permissão para acessar este recurso."
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles é o atalho usado nas declarações de rota.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
