package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	dto "harmonia_backend/internals/features/school/schedules/dto"
	schedModel "harmonia_backend/internals/features/school/schedules/model"
	helper "harmonia_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

// POST /api/schedules — professor cria um horário para um aluno seu.
func (sc *ScheduleController) Create(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador de aluno inválido.")
	}

	schedule := schedModel.ScheduleModel{
		StudentID: studentID,
		TeacherID: teacherID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := sc.DB.Create(&schedule).Error; err != nil {
		status, msg := helper.MapPGError(err, "")
		log.Printf("[ERROR] create schedule: %v", err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonCreated(c, "Horário criado com sucesso.", fiber.Map{
		"scheduleId": schedule.ID,
	})
}

// GET /api/schedules/my — professor vê os horários que criou; aluno vê os
// horários em que é o aluno.
func (sc *ScheduleController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	query := sc.DB.Order("day_of_week ASC, start_time ASC")
	if helper.GetUserRole(c) == constants.RoleTeacher {
		query = query.Where("teacher_id = ?", userID)
	} else {
		query = query.Where("student_id = ?", userID)
	}

	var schedules []schedModel.ScheduleModel
	if err := query.Find(&schedules).Error; err != nil {
		log.Printf("[ERROR] list schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar horários.")
	}
	return helper.JsonList(c, schedules)
}

// DELETE /api/schedules/:id — só o professor dono remove.
func (sc *ScheduleController) Delete(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	res := sc.DB.Delete(&schedModel.ScheduleModel{}, "id = ? AND teacher_id = ?", scheduleID, teacherID)
	if res.Error != nil {
		log.Printf("[ERROR] delete schedule: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover horário.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Horário não encontrado.")
	}
	return helper.JsonDeleted(c, "Horário removido.")
}
