package dto

type CreateNoticeRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"omitempty,max=50"`
	IsPinned bool   `json:"isPinned"`
}
