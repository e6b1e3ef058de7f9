package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"harmonia_backend/internals/constants"
)

// UserModel representa a tabela users.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:100;not null" json:"user_name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'STUDENT'" json:"role"`

	// Professor vinculado (apenas para alunos). Precisa apontar para um
	// usuário com papel TEACHER; o controller valida antes de gravar.
	TeacherID *uuid.UUID `gorm:"type:uuid" json:"teacher_id,omitempty"`

	// Instrumentos que o aluno estuda ou o professor leciona.
	Instruments pq.StringArray `gorm:"type:text[]" json:"instruments"`

	ResetCode          *string    `gorm:"type:char(6)" json:"-"`
	ResetCodeExpiresAt *time.Time `json:"-"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeSave fecha o conjunto de papéis também na borda de escrita do ORM,
// não só no controller.
func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	if !constants.IsValidRole(u.Role) {
		return gorm.ErrInvalidData
	}
	return nil
}
