// internals/features/users/auth/service/recovery_service.go
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "harmonia_backend/internals/features/users/user/model"
	helper "harmonia_backend/internals/helpers"
	"harmonia_backend/internals/helpers/mailer"
)

const resetCodeTTL = time.Hour

// GenerateResetCode sorteia um código de 6 dígitos uniforme, com zeros à
// esquerda preservados.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ========================== FORGOT PASSWORD ==========================
// POST /api/users/forgot-password — resposta idêntica exista a conta ou
// não, para impedir enumeração de e-mails.
func ForgotPassword(db *gorm.DB, m mailer.Mailer, c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	const neutralMessage = "Se o e-mail estiver cadastrado, enviaremos um código de recuperação."

	var user userModel.UserModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, neutralMessage, nil)
		}
		log.Printf("[ERROR] forgot-password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	code, err := GenerateResetCode()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	expires := time.Now().Add(resetCodeTTL)
	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"reset_code":            code,
			"reset_code_expires_at": expires,
		}).Error; err != nil {
		log.Printf("[ERROR] forgot-password update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	body := fmt.Sprintf(
		"Olá, %s!\n\nSeu código de recuperação de senha é: %s\nEle expira em 1 hora.\n\nEscola de Música Harmonia",
		user.UserName, code,
	)
	if err := m.Send(user.Email, "Recuperação de senha — Harmonia", body); err != nil {
		// O código fica persistido; o cliente pode tentar de novo.
		log.Printf("[ERROR] envio de e-mail de recuperação: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Não foi possível enviar o e-mail de recuperação.")
	}

	return helper.JsonOK(c, neutralMessage, nil)
}

// ========================== RESET PASSWORD ==========================
// PUT /api/users/reset-password — o código confere e está dentro da
// validade num único UPDATE condicional: sucesso troca a senha e limpa o
// código atomicamente, então o mesmo código nunca funciona duas vezes.
// Qualquer falha devolve o mesmo erro genérico, sem dizer qual checagem
// reprovou.
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Token       string `json:"token" validate:"required,len=6,numeric"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token inválido ou expirado.")
	}

	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao processar a senha.")
	}

	res := db.Model(&userModel.UserModel{}).
		Where("reset_code = ? AND reset_code_expires_at > ?", input.Token, time.Now()).
		Updates(map[string]interface{}{
			"password":              hash,
			"reset_code":            nil,
			"reset_code_expires_at": nil,
		})
	if res.Error != nil {
		log.Printf("[ERROR] reset-password: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token inválido ou expirado.")
	}

	return helper.JsonUpdated(c, "Senha redefinida com sucesso.", nil)
}
