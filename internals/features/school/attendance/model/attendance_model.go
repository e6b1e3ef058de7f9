package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel — no máximo uma linha por (schedule, aluno, data);
// a unicidade é a chave primária composta e a gravação é sempre upsert.
type AttendanceModel struct {
	ScheduleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"schedule_id"`
	StudentID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	ClassDate  time.Time `gorm:"type:date;primaryKey" json:"class_date"`
	Status     string    `gorm:"type:varchar(10);not null" json:"status"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
