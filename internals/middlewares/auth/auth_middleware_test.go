package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"harmonia_backend/internals/constants"
	authService "harmonia_backend/internals/features/users/auth/service"
	userModel "harmonia_backend/internals/features/users/user/model"
	helper "harmonia_backend/internals/helpers"
)

const testSecret = "segredo-de-teste"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/eco", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(helper.LocalUserID),
			"role":    c.Locals(helper.LocalUserRole),
		})
	})
	return app
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/eco", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	app := protectedApp()

	for _, header := range []string{"Bearer lixo", "Token abc", "Bearer ", "abc"} {
		req := httptest.NewRequest("GET", "/api/eco", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("header %q: status = %d, esperado 401", header, resp.StatusCode)
		}
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	user := &userModel.UserModel{ID: uuid.New(), UserName: "Ana", Role: constants.RoleStudent}
	token, _ := authService.IssueToken(testSecret, -time.Minute, user)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/api/eco", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401 para token vencido", resp.StatusCode)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	user := &userModel.UserModel{ID: uuid.New(), UserName: "Ana", Role: constants.RoleTeacher}
	token, _ := authService.IssueToken(testSecret, time.Hour, user)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/api/eco", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, esperado 200 para token válido", resp.StatusCode)
	}
}
