package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel é uma tarefa de estudo atribuída a um aluno.
type TaskModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null" json:"student_id"`
	CreatorID uuid.UUID  `gorm:"type:uuid;not null" json:"creator_id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	DueDate   *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// TaskSubmissionModel — no máximo uma por (tarefa, aluno), sempre upsert.
type TaskSubmissionModel struct {
	TaskID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"task_id"`
	StudentID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"student_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (TaskSubmissionModel) TableName() string {
	return "task_submissions"
}
