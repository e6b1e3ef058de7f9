// file: internals/features/school/schedules/route/schedule_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	controller "harmonia_backend/internals/features/school/schedules/controller"
	authMw "harmonia_backend/internals/middlewares/auth"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	scheduleController := controller.New(db, v)

	schedules := api.Group("/schedules")

	onlyTeacher := authMw.OnlyRoles("Apenas professores gerenciam horários.", constants.RoleTeacher)

	schedules.Post("/", onlyTeacher, scheduleController.Create)
	schedules.Delete("/:id", onlyTeacher, scheduleController.Delete)
	schedules.Get("/my",
		authMw.OnlyRoles("", constants.RoleTeacher, constants.RoleStudent),
		scheduleController.ListMine,
	)
}
