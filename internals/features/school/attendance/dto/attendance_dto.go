package dto

// MarkAttendanceRequest — classDate em "2006-01-02".
type MarkAttendanceRequest struct {
	ScheduleID string `json:"scheduleId" validate:"required,uuid4"`
	StudentID  string `json:"studentId" validate:"required,uuid4"`
	ClassDate  string `json:"classDate" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=PRESENT ABSENT EXCUSED"`
}
