// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/configs"
	"harmonia_backend/internals/constants"
	userModel "harmonia_backend/internals/features/users/user/model"
	helper "harmonia_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/users/register — auto-cadastro é sempre de aluno; os demais
// papéis só nascem pela mão do admin.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name" validate:"required,min=3,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if input.Role != "" && input.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cadastro público é permitido apenas para alunos.")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao processar a senha.")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: hash,
		Role:     constants.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado.")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar usuário.")
	}

	return helper.JsonCreated(c, "Usuário cadastrado com sucesso.", fiber.Map{
		"userId": user.ID,
	})
}

// ========================== LOGIN ==========================
// POST /api/users/login — mesma mensagem genérica para e-mail inexistente
// e senha errada, para não vazar quais contas existem.
func Login(db *gorm.DB, cfg *configs.Config, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas.")
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	if !CheckPasswordHash(input.Password, user.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas.")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada.")
	}

	token, err := IssueToken(cfg.JWTSecret, cfg.JWTTTL, &user)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar token.")
	}

	return helper.JsonOK(c, "Login realizado com sucesso.", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.UserName,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
