package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "harmonia_backend/internals/features/school/attendance/dto"
	attModel "harmonia_backend/internals/features/school/attendance/model"
	schedModel "harmonia_backend/internals/features/school/schedules/model"
	helper "harmonia_backend/internals/helpers"
	"harmonia_backend/internals/helpers/upsert"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

// POST /api/attendance — marca presença. Idempotente: repetir a mesma
// (schedule, aluno, data) sobrescreve o status em um único statement.
// A posse do horário é checada ANTES da escrita; quem não é o dono recebe
// 403 e nada é gravado.
func (ac *AttendanceController) Mark(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	scheduleID, _ := uuid.Parse(req.ScheduleID)
	studentID, _ := uuid.Parse(req.StudentID)
	classDate, _ := time.Parse("2006-01-02", req.ClassDate)

	var schedule schedModel.ScheduleModel
	if err := ac.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Horário não encontrado.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}
	if schedule.TeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "Este horário pertence a outro professor.")
	}

	row := attModel.AttendanceModel{
		ScheduleID: scheduleID,
		StudentID:  studentID,
		ClassDate:  classDate,
		Status:     req.Status,
	}
	if err := upsert.OnNaturalKey(ac.DB,
		[]string{"schedule_id", "student_id", "class_date"},
		[]string{"status", "updated_at"},
		&row,
	); err != nil {
		status, msg := helper.MapPGError(err, "")
		log.Printf("[ERROR] mark attendance: %v", err)
		return helper.JsonError(c, status, msg)
	}

	return helper.JsonOK(c, "Presença registrada.", nil)
}

// GET /api/attendance/schedule/:scheduleId — histórico de presenças de um
// horário do professor autenticado.
func (ac *AttendanceController) ListBySchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var schedule schedModel.ScheduleModel
	if err := ac.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Horário não encontrado.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
	}
	if schedule.TeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "Este horário pertence a outro professor.")
	}

	var rows []attModel.AttendanceModel
	if err := ac.DB.
		Where("schedule_id = ?", scheduleID).
		Order("class_date DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar presenças.")
	}
	return helper.JsonList(c, rows)
}
