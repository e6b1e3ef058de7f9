package model

import (
	"time"

	"github.com/google/uuid"
)

// NoticeModel é o mural de avisos. Fixados vêm antes dos demais; dentro de
// cada grupo, do mais recente para o mais antigo.
type NoticeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	AuthorName string    `gorm:"size:100;not null" json:"author_name"`
	Category   string    `gorm:"size:50;not null;default:'GERAL'" json:"category"`
	IsPinned   bool      `gorm:"not null;default:false" json:"is_pinned"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NoticeModel) TableName() string {
	return "notices"
}
