package dto

// CreateScheduleRequest — dia da semana 0 (domingo) a 6 (sábado),
// horários "HH:MM".
type CreateScheduleRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid4"`
	DayOfWeek *int   `json:"dayOfWeek" validate:"required,min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}
