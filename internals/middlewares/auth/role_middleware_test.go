package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	helper "harmonia_backend/internals/helpers"
)

func appWithRole(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helper.LocalUserRole, role)
		}
		return c.Next()
	})
	app.Get("/protegido", gate, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRolesAllows(t *testing.T) {
	app := appWithRole("TEACHER", OnlyRoles("", "TEACHER", "ADMIN"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, esperado 200", resp.StatusCode)
	}
}

func TestOnlyRolesForbids(t *testing.T) {
	app := appWithRole("STUDENT", OnlyRoles("Só professores.", "TEACHER"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, esperado 403", resp.StatusCode)
	}
}

func TestOnlyRolesMissingRole(t *testing.T) {
	app := appWithRole("", OnlyRoles("", "TEACHER"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", resp.StatusCode)
	}
}
