package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapPGErrorUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505"}
	status, msg := MapPGError(err, "E-mail já cadastrado.")
	if status != fiber.StatusConflict {
		t.Fatalf("status = %d, esperado 409", status)
	}
	if msg != "E-mail já cadastrado." {
		t.Fatalf("msg = %q", msg)
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("IsUniqueViolation deveria reconhecer 23505")
	}
}

func TestMapPGErrorForeignKey(t *testing.T) {
	status, _ := MapPGError(&pgconn.PgError{Code: "23503"}, "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", status)
	}
}

func TestMapPGErrorUnknown(t *testing.T) {
	status, _ := MapPGError(errors.New("qualquer"), "")
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, esperado 500", status)
	}
	if IsUniqueViolation(errors.New("qualquer")) {
		t.Fatalf("erro genérico não é violação de unicidade")
	}
}
