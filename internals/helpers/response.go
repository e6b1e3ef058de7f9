package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Formato de resposta do backend: sempre um objeto JSON com "message",
// mais os campos específicos do endpoint. Nunca stack trace para o cliente.

func JsonOK(c *fiber.Ctx, message string, data fiber.Map) error {
	return jsonWithCode(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data fiber.Map) error {
	return jsonWithCode(c, fiber.StatusCreated, message, data)
}

func JsonUpdated(c *fiber.Ctx, message string, data fiber.Map) error {
	return jsonWithCode(c, fiber.StatusOK, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string) error {
	return jsonWithCode(c, fiber.StatusOK, message, nil)
}

// JsonList responde uma coleção crua (o app consome o array direto).
func JsonList(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func jsonWithCode(c *fiber.Ctx, code int, message string, data fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

// JsonValidationError converte erros do validator.v10 em 400 com o mapa
// campo → regra violada.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Dados inválidos.")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Dados inválidos.",
		"errors":  fields,
	})
}
