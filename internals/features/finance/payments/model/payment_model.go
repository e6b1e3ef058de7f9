package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentModel é a cobrança de um ciclo de mensalidade. A transição de
// status normal é PENDING → PAID, em sentido único.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	FinanceUserID uuid.UUID `gorm:"type:uuid;not null" json:"finance_user_id"`
	Amount        float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description   string    `gorm:"not null;default:''" json:"description"`
	PaymentDate   time.Time `gorm:"type:date;not null" json:"payment_date"`
	Status        string    `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
	PaymentMethod string    `gorm:"type:varchar(30);not null;default:''" json:"payment_method"`

	// Payload simulado do meio de pagamento (código PIX, linha digitável
	// do boleto). Não há integração real com gateway.
	GatewayPayload datatypes.JSON `gorm:"type:jsonb" json:"gateway_payload,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
