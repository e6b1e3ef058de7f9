package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "harmonia_backend/internals/features/users/user/model"
)

// UpdateUserRequest é o corpo do PUT administrativo. Ponteiros: campo
// ausente não é alterado.
type UpdateUserRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=3,max=100"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Role        *string   `json:"role" validate:"omitempty,oneof=STUDENT TEACHER ADMIN FINANCE"`
	TeacherID   *string   `json:"teacherId" validate:"omitempty,uuid4"`
	Instruments *[]string `json:"instruments"`
	IsActive    *bool     `json:"isActive"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	Instruments []string   `json:"instruments"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.UserName,
		Email:       u.Email,
		Role:        u.Role,
		TeacherID:   u.TeacherID,
		Instruments: u.Instruments,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
