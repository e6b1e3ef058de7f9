// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/configs"
	controller "harmonia_backend/internals/features/users/auth/controller"
	"harmonia_backend/internals/helpers/mailer"
	rateLimiter "harmonia_backend/internals/middlewares"
)

// AuthRoutes registra os endpoints públicos de autenticação.
// Base: /api/users
func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, m mailer.Mailer) {
	authController := controller.NewAuthController(db, cfg, m)

	users := app.Group("/api/users")

	users.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	users.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	users.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	users.Put("/reset-password", authController.ResetPassword)
}
