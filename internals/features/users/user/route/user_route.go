// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	controller "harmonia_backend/internals/features/users/user/controller"
	authMw "harmonia_backend/internals/middlewares/auth"
)

// UserRoutes registra os endpoints autenticados de usuário.
// Base: /api/users (o AuthMiddleware já rodou no grupo).
func UserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	userController := controller.NewUserController(db, v)

	users := api.Group("/users")

	// Aluno consulta o próprio professor.
	users.Get("/my-teacher",
		authMw.OnlyRoles("Apenas alunos têm professor vinculado.", constants.RoleStudent),
		userController.MyTeacher,
	)

	// Administração de usuários.
	onlyAdmin := authMw.OnlyRoles("Acesso restrito à administração.", constants.RoleAdmin)
	users.Get("/", onlyAdmin, userController.List)
	users.Put("/:id", onlyAdmin, userController.Update)
	users.Delete("/:id", onlyAdmin, userController.Delete)
}
