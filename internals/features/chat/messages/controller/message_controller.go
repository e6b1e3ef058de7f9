package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	dto "harmonia_backend/internals/features/chat/messages/dto"
	msgModel "harmonia_backend/internals/features/chat/messages/model"
	helper "harmonia_backend/internals/helpers"
)

type MessageController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *MessageController {
	return &MessageController{DB: db, Validate: v}
}

// GET /api/chat/history/:userId — todas as mensagens entre o usuário
// autenticado e o outro, nos dois sentidos, em ordem de envio. Sem
// paginação (limitação conhecida nesta escala).
func (mc *MessageController) History(c *fiber.Ctx) error {
	me, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	other, err := uuid.Parse(strings.TrimSpace(c.Params("userId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var messages []msgModel.ChatMessageModel
	if err := mc.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			me, other, other, me).
		Order("sent_at ASC").
		Find(&messages).Error; err != nil {
		log.Printf("[ERROR] chat history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar histórico.")
	}

	return helper.JsonList(c, messages)
}

// POST /api/chat/send — append-only. O upload do anexo é uma chamada
// separada; aqui só entra a referência já devolvida por ele.
func (mc *MessageController) Send(c *fiber.Ctx) error {
	sender, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.HasContent() {
		return helper.JsonError(c, fiber.StatusBadRequest, "A mensagem precisa de texto ou anexo.")
	}

	receiver, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Destinatário inválido.")
	}
	if receiver == sender {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não é possível enviar mensagem para si mesmo.")
	}

	message := msgModel.ChatMessageModel{
		SenderID:    sender,
		ReceiverID:  receiver,
		MessageText: strings.TrimSpace(req.MessageText),
		MessageType: resolveMessageType(&req),
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
	}
	if err := mc.DB.Create(&message).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		log.Printf("[ERROR] send message: %v", err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonCreated(c, "Mensagem enviada.", fiber.Map{
		"data": message,
	})
}

// resolveMessageType guarda o tipo declarado como veio; sem declaração,
// classifica pela extensão do anexo, e sem anexo é TEXT.
func resolveMessageType(req *dto.SendMessageRequest) string {
	if req.MessageType != "" {
		return req.MessageType
	}
	if req.FileName != nil && *req.FileName != "" {
		return constants.DetectMessageTypeFromExt(*req.FileName)
	}
	if req.FileURL != nil && *req.FileURL != "" {
		return constants.DetectMessageTypeFromExt(*req.FileURL)
	}
	return constants.MessageTypeText
}
