package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
	dto "harmonia_backend/internals/features/finance/payments/dto"
	payModel "harmonia_backend/internals/features/finance/payments/model"
	userModel "harmonia_backend/internals/features/users/user/model"
	helper "harmonia_backend/internals/helpers"
	"harmonia_backend/internals/helpers/mailer"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   mailer.Mailer
}

func New(db *gorm.DB, v *validator.Validate, m mailer.Mailer) *PaymentController {
	return &PaymentController{DB: db, Validate: v, Mailer: m}
}

// POST /api/finance — cria a cobrança do ciclo. O payload do meio de
// pagamento é simulado (sem gateway real).
func (pc *PaymentController) Create(c *fiber.Ctx) error {
	financeUserID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.StudentID)
	paymentDate, _ := time.Parse("2006-01-02", req.PaymentDate)

	status := req.Status
	if status == "" {
		status = constants.PaymentPending
	}

	payment := payModel.PaymentModel{
		StudentID:      studentID,
		FinanceUserID:  financeUserID,
		Amount:         req.Amount,
		Description:    req.Description,
		PaymentDate:    paymentDate,
		Status:         status,
		PaymentMethod:  req.PaymentMethod,
		GatewayPayload: simulateGatewayPayload(req.PaymentMethod, req.Amount),
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		st, msg := helper.MapPGError(err, "")
		log.Printf("[ERROR] create payment: %v", err)
		return helper.JsonError(c, st, msg)
	}

	return helper.JsonCreated(c, "Cobrança criada com sucesso.", fiber.Map{
		"paymentId": payment.ID,
	})
}

// GET /api/finance/student/:studentId — cobranças de um aluno.
func (pc *PaymentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var payments []payModel.PaymentModel
	if err := pc.DB.
		Where("student_id = ?", studentID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar cobranças.")
	}
	return helper.JsonList(c, payments)
}

// PUT /api/finance/:id/confirm — PENDING → PAID, sentido único. O e-mail
// de confirmação é melhor-esforço: se falhar depois do status gravado, o
// status fica e só a falha de notificação é reportada.
func (pc *PaymentController) Confirm(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	res := pc.DB.Model(&payModel.PaymentModel{}).
		Where("id = ? AND status <> ?", paymentID, constants.PaymentPaid).
		Update("status", constants.PaymentPaid)
	if res.Error != nil {
		log.Printf("[ERROR] confirm payment: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao confirmar pagamento.")
	}
	if res.RowsAffected == 0 {
		var exists payModel.PaymentModel
		if err := pc.DB.First(&exists, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Cobrança não encontrada.")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno.")
		}
		// Já estava paga; confirmar de novo não regride nada.
		return helper.JsonOK(c, "Pagamento já estava confirmado.", nil)
	}

	if err := pc.notifyStudent(paymentID); err != nil {
		log.Printf("[WARN] confirmação gravada, e-mail falhou: %v", err)
		return helper.JsonOK(c, "Pagamento confirmado, mas o e-mail de aviso falhou.", nil)
	}
	return helper.JsonOK(c, "Pagamento confirmado.", nil)
}

func (pc *PaymentController) notifyStudent(paymentID uuid.UUID) error {
	var payment payModel.PaymentModel
	if err := pc.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return err
	}
	var student userModel.UserModel
	if err := pc.DB.First(&student, "id = ?", payment.StudentID).Error; err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Olá, %s!\n\nRecebemos o pagamento de R$ %.2f (%s).\n\nEscola de Música Harmonia",
		student.UserName, payment.Amount, payment.Description,
	)
	return pc.Mailer.Send(student.Email, "Pagamento confirmado — Harmonia", body)
}

// simulateGatewayPayload fabrica os dados que um gateway devolveria, só
// para o app exibir algo plausível na tela de pagamento.
func simulateGatewayPayload(method string, amount float64) datatypes.JSON {
	switch method {
	case "PIX":
		return datatypes.JSON(fmt.Sprintf(
			`{"pix_copia_cola":"00020126harmonia%d5204000053039865802BR","amount":%.2f}`,
			time.Now().UnixNano()%1000000, amount,
		))
	case "BOLETO":
		return datatypes.JSON(fmt.Sprintf(
			`{"linha_digitavel":"23793.38128 60007.827136 95000.063305 %d","amount":%.2f}`,
			time.Now().Unix()%10, amount,
		))
	default:
		return nil
	}
}
