// file: internals/features/school/tasks/route/task_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	controller "harmonia_backend/internals/features/school/tasks/controller"
	authMw "harmonia_backend/internals/middlewares/auth"
)

func TaskRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	taskController := controller.New(db, v)

	tasks := api.Group("/tasks")

	tasks.Post("/",
		authMw.OnlyRoles("Apenas professores e administradores criam tarefas.",
			constants.RoleTeacher, constants.RoleAdmin),
		taskController.Create,
	)
	tasks.Get("/my",
		authMw.OnlyRoles("", constants.RoleStudent),
		taskController.ListMine,
	)
	tasks.Post("/:taskId/status",
		authMw.OnlyRoles("Apenas o aluno atualiza o status da tarefa.", constants.RoleStudent),
		taskController.UpdateStatus,
	)
}
