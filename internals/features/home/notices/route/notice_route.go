// file: internals/features/home/notices/route/notice_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	controller "harmonia_backend/internals/features/home/notices/controller"
	authMw "harmonia_backend/internals/middlewares/auth"
)

func NoticeRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	noticeController := controller.New(db, v)

	notices := api.Group("/notices")

	notices.Get("/", noticeController.List)
	notices.Post("/",
		authMw.OnlyRoles("Apenas professores e administradores publicam avisos.",
			constants.RoleTeacher, constants.RoleAdmin),
		noticeController.Create,
	)
	// A posse (autor ou admin) é checada no controller.
	notices.Delete("/:id", noticeController.Delete)
}
