package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Chaves gravadas em c.Locals pelo middleware de autenticação.
// Mantidas num lugar só para não divergirem entre middleware e controllers.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalUserRole = "userRole"
)

// GetUserID devolve o id autenticado ou erro 401 se o contexto não tem um.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals(LocalUserID).(string)
	if !ok || idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Não autenticado.")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Identificador inválido no token.")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalUserRole).(string)
	return role
}

func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(LocalUserName).(string)
	return name
}
