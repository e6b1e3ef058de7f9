package dto

type CreateTaskRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid4"`
	Title     string `json:"title" validate:"required,min=1,max=255"`
	DueDate   string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskStatusRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}
