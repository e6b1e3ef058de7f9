package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "harmonia_backend/internals/features/school/tasks/dto"
	taskModel "harmonia_backend/internals/features/school/tasks/model"
	helper "harmonia_backend/internals/helpers"
	"harmonia_backend/internals/helpers/upsert"
)

type TaskController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TaskController {
	return &TaskController{DB: db, Validate: v}
}

// POST /api/tasks — professor ou admin cria tarefa para um aluno.
func (tc *TaskController) Create(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := tc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.StudentID)
	task := taskModel.TaskModel{
		StudentID: studentID,
		CreatorID: creatorID,
		Title:     req.Title,
	}
	if req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", req.DueDate)
		task.DueDate = &due
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		log.Printf("[ERROR] create task: %v", err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonCreated(c, "Tarefa criada com sucesso.", fiber.Map{
		"taskId": task.ID,
	})
}

// GET /api/tasks/my — aluno lista as próprias tarefas com o estado de
// conclusão (LEFT JOIN na submission).
func (tc *TaskController) ListMine(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	type taskWithStatus struct {
		ID          uuid.UUID  `json:"id"`
		StudentID   uuid.UUID  `json:"student_id"`
		CreatorID   uuid.UUID  `json:"creator_id"`
		Title       string     `json:"title"`
		DueDate     *time.Time `json:"due_date,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
		Completed   bool       `json:"completed"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
	}

	var rows []taskWithStatus
	if err := tc.DB.
		Table("tasks").
		Select("tasks.id, tasks.student_id, tasks.creator_id, tasks.title, tasks.due_date, tasks.created_at, COALESCE(ts.completed, false) AS completed, ts.completed_at").
		Joins("LEFT JOIN task_submissions ts ON ts.task_id = tasks.id AND ts.student_id = tasks.student_id").
		Where("tasks.student_id = ?", studentID).
		Order("tasks.due_date ASC NULLS LAST, tasks.created_at DESC").
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list tasks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar tarefas.")
	}
	return helper.JsonList(c, rows)
}

// POST /api/tasks/:taskId/status — aluno marca/desmarca a própria tarefa.
// Upsert por (task, aluno): repetir a chamada só sobrescreve o estado.
func (tc *TaskController) UpdateStatus(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := tc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var task taskModel.TaskModel
	if err := tc.DB.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tarefa não encontrada.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}
	if task.StudentID != studentID {
		return helper.JsonError(c, fiber.StatusForbidden, "Esta tarefa pertence a outro aluno.")
	}

	row := taskModel.TaskSubmissionModel{
		TaskID:    taskID,
		StudentID: studentID,
		Completed: *req.Completed,
	}
	if *req.Completed {
		now := time.Now()
		row.CompletedAt = &now
	}

	if err := upsert.OnNaturalKey(tc.DB,
		[]string{"task_id", "student_id"},
		[]string{"completed", "completed_at"},
		&row,
	); err != nil {
		status, msg := helper.MapPGError(err, "")
		log.Printf("[ERROR] task status: %v", err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonOK(c, "Status da tarefa atualizado.", nil)
}
