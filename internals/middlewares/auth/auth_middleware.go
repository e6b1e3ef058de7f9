// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "harmonia_backend/internals/features/users/auth/service"
	helper "harmonia_backend/internals/helpers"
)

// AuthMiddleware verifica o Bearer token e popula a identidade no contexto.
// Qualquer token ausente, malformado, adulterado ou expirado vira 401
// antes de qualquer handler rodar.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token de autenticação ausente.")
		}

		claims, err := authService.VerifyToken(jwtSecret, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido ou expirado.")
		}

		c.Locals(helper.LocalUserID, claims.UserID)
		c.Locals(helper.LocalUserName, claims.UserName)
		c.Locals(helper.LocalUserRole, claims.Role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", fiber.ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fiber.ErrUnauthorized
	}
	return strings.TrimSpace(parts[1]), nil
}
