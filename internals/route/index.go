// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/configs"
	attendanceRoute "harmonia_backend/internals/features/school/attendance/route"
	chatRoute "harmonia_backend/internals/features/chat/messages/route"
	paymentRoute "harmonia_backend/internals/features/finance/payments/route"
	noticeRoute "harmonia_backend/internals/features/home/notices/route"
	scheduleRoute "harmonia_backend/internals/features/school/schedules/route"
	taskRoute "harmonia_backend/internals/features/school/tasks/route"
	authRoute "harmonia_backend/internals/features/users/auth/route"
	userRoute "harmonia_backend/internals/features/users/user/route"
	"harmonia_backend/internals/helpers/mailer"
	authMw "harmonia_backend/internals/middlewares/auth"
)

// SetupRoutes registra primeiro as rotas públicas de autenticação e depois
// o grupo protegido: tudo sob /api (exceto login/register/recuperação)
// passa pelo verificador de token antes de qualquer handler.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, v *validator.Validate, m mailer.Mailer) {
	log.Println("[INFO] Registrando rotas públicas de autenticação...")
	authRoute.AuthRoutes(app, db, cfg, m)

	log.Println("[INFO] Registrando rotas protegidas...")
	api := app.Group("/api", authMw.AuthMiddleware(cfg.JWTSecret))

	userRoute.UserRoutes(api, db, v)
	scheduleRoute.ScheduleRoutes(api, db, v)
	attendanceRoute.AttendanceRoutes(api, db, v)
	taskRoute.TaskRoutes(api, db, v)
	paymentRoute.PaymentRoutes(api, db, v, m)
	noticeRoute.NoticeRoutes(api, db, v)
	chatRoute.ChatRoutes(api, db, v, cfg)
}
