// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	controller "harmonia_backend/internals/features/school/attendance/controller"
	authMw "harmonia_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	attendanceController := controller.New(db, v)

	attendance := api.Group("/attendance",
		authMw.OnlyRoles("Apenas professores registram presença.", constants.RoleTeacher),
	)

	attendance.Post("/", attendanceController.Mark)
	attendance.Get("/schedule/:scheduleId", attendanceController.ListBySchedule)
}
