package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	dto "harmonia_backend/internals/features/users/user/dto"
	userModel "harmonia_backend/internals/features/users/user/model"
	helper "harmonia_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* =========================
   ADMIN
   ========================= */

// GET /api/users — listagem administrativa.
func (uc *UserController) List(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar usuários.")
	}
	return helper.JsonList(c, dto.ToUserResponses(users))
}

// PUT /api/users/:id — edição administrativa, inclusive troca de papel e
// vínculo de professor.
func (uc *UserController) Update(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := uc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["user_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if !constants.IsValidRole(*req.Role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Papel inválido.")
		}
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Instruments != nil {
		updates["instruments"] = *req.Instruments
	}
	if req.TeacherID != nil {
		// O vínculo só pode apontar para um usuário que é de fato professor.
		teacherUUID, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Identificador de professor inválido.")
		}
		var teacher userModel.UserModel
		if err := uc.DB.First(&teacher, "id = ? AND role = ?", teacherUUID, constants.RoleTeacher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "O usuário indicado não é um professor.")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
		}
		updates["teacher_id"] = teacherUUID
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar.")
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado.")
		}
		log.Printf("[ERROR] update user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar usuário.")
	}

	return helper.JsonUpdated(c, "Usuário atualizado com sucesso.", nil)
}

// DELETE /api/users/:id — remoção definitiva, só admin.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	res := uc.DB.Delete(&userModel.UserModel{}, "id = ?", userID)
	if res.Error != nil {
		log.Printf("[ERROR] delete user: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover usuário.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	return helper.JsonDeleted(c, "Usuário removido.")
}

/* =========================
   ALUNO
   ========================= */

// GET /api/users/my-teacher — professor vinculado ao aluno autenticado.
func (uc *UserController) MyTeacher(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Não autenticado.")
	}

	var me userModel.UserModel
	if err := uc.DB.First(&me, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	if me.TeacherID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhum professor vinculado.")
	}

	var teacher userModel.UserModel
	if err := uc.DB.First(&teacher, "id = ?", *me.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nenhum professor vinculado.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	resp := dto.ToUserResponse(&teacher)
	return c.Status(fiber.StatusOK).JSON(resp)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, errors.New(name + " obrigatório")
	}
	return uuid.Parse(idStr)
}
