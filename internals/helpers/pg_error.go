package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPGError traduz erros do Postgres para status HTTP.
// 23505 = unique_violation, 23503 = foreign_key_violation.
func MapPGError(err error, conflictMessage string) (int, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if conflictMessage == "" {
				conflictMessage = "Registro duplicado."
			}
			return fiber.StatusConflict, conflictMessage
		case "23503":
			return fiber.StatusBadRequest, "Referência inexistente."
		case "23514":
			return fiber.StatusBadRequest, "Valor fora do conjunto permitido."
		}
	}
	return fiber.StatusInternalServerError, "Erro interno."
}

// IsUniqueViolation detecta colisão de chave única (ex.: e-mail repetido).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
