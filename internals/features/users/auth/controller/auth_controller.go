package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/configs"
	"harmonia_backend/internals/features/users/auth/service"
	"harmonia_backend/internals/helpers/mailer"
)

type AuthController struct {
	DB     *gorm.DB
	Config *configs.Config
	Mailer mailer.Mailer
}

func NewAuthController(db *gorm.DB, cfg *configs.Config, m mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Config: cfg, Mailer: m}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, ac.Config, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return service.ForgotPassword(ac.DB, ac.Mailer, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}
