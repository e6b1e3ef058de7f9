// file: internals/features/chat/messages/route/chat_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/configs"
	attachmentController "harmonia_backend/internals/features/chat/attachments/controller"
	messageController "harmonia_backend/internals/features/chat/messages/controller"
)

// ChatRoutes — qualquer usuário autenticado conversa com qualquer outro;
// não há allow-list de papel no chat.
func ChatRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, cfg *configs.Config) {
	messages := messageController.New(db, v)
	attachments := attachmentController.New(cfg)

	chat := api.Group("/chat")

	chat.Get("/history/:userId", messages.History)
	chat.Post("/send", messages.Send)
	chat.Post("/upload", attachments.Upload)
}
