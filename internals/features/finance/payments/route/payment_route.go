// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	controller "harmonia_backend/internals/features/finance/payments/controller"
	"harmonia_backend/internals/helpers/mailer"
	authMw "harmonia_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, m mailer.Mailer) {
	paymentController := controller.New(db, v, m)

	finance := api.Group("/finance",
		authMw.OnlyRoles("Acesso restrito ao financeiro.",
			constants.RoleAdmin, constants.RoleFinance),
	)

	finance.Post("/", paymentController.Create)
	finance.Get("/student/:studentId", paymentController.ListByStudent)
	finance.Put("/:id/confirm", paymentController.Confirm)
}
