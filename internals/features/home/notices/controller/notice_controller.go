package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	dto "harmonia_backend/internals/features/home/notices/dto"
	noticeModel "harmonia_backend/internals/features/home/notices/model"
	helper "harmonia_backend/internals/helpers"
)

type NoticeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *NoticeController {
	return &NoticeController{DB: db, Validate: v}
}

// POST /api/notices
func (nc *NoticeController) Create(c *fiber.Ctx) error {
	authorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := nc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	category := req.Category
	if category == "" {
		category = "GERAL"
	}

	notice := noticeModel.NoticeModel{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   authorID,
		AuthorName: helper.GetUserName(c),
		Category:   category,
		IsPinned:   req.IsPinned,
	}
	if err := nc.DB.Create(&notice).Error; err != nil {
		log.Printf("[ERROR] create notice: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar aviso.")
	}

	return helper.JsonCreated(c, "Aviso publicado.", fiber.Map{
		"noticeId": notice.ID,
	})
}

// GET /api/notices — fixados primeiro, cada grupo por recência.
func (nc *NoticeController) List(c *fiber.Ctx) error {
	var notices []noticeModel.NoticeModel
	if err := nc.DB.
		Order("is_pinned DESC, created_at DESC").
		Find(&notices).Error; err != nil {
		log.Printf("[ERROR] list notices: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar avisos.")
	}
	return helper.JsonList(c, notices)
}

// DELETE /api/notices/:id — autor ou admin.
func (nc *NoticeController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	noticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var notice noticeModel.NoticeModel
	if err := nc.DB.First(&notice, "id = ?", noticeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aviso não encontrado.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}

	if notice.AuthorID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Somente o autor ou a administração remove avisos.")
	}

	if err := nc.DB.Delete(&notice).Error; err != nil {
		log.Printf("[ERROR] delete notice: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover aviso.")
	}
	return helper.JsonDeleted(c, "Aviso removido.")
}
