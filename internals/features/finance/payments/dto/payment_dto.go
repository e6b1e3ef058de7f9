package dto

type CreatePaymentRequest struct {
	StudentID     string  `json:"studentId" validate:"required,uuid4"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"max=500"`
	PaymentDate   string  `json:"paymentDate" validate:"required,datetime=2006-01-02"`
	Status        string  `json:"status" validate:"omitempty,oneof=PENDING PAID OVERDUE"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=PIX BOLETO CARTAO DINHEIRO"`
}
