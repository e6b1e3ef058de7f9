package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel é imutável depois de criada: não existe edição nem
// remoção de mensagem. A ordenação do histórico é por sent_at, garantida
// pelo banco, não pela ordem de chegada das requisições.
type ChatMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null" json:"receiver_id"`
	MessageText string    `gorm:"not null;default:''" json:"message_text"`
	MessageType string    `gorm:"type:varchar(10);not null;default:'TEXT'" json:"message_type"`
	FileURL     *string   `json:"file_url,omitempty"`
	FileName    *string   `json:"file_name,omitempty"`
	FileSize    *int64    `json:"file_size,omitempty"`
	SentAt      time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
