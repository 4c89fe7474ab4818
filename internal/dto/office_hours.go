package dto

// ── 答疑时段模块 DTO ──

// CreateOfficeHourRequest 新建答疑时段请求
type CreateOfficeHourRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time"  binding:"required"`
	EndTime   string `json:"end_time"    binding:"required"`
}

// AvailableSlotsRequest 学生按日期查询可约时段
type AvailableSlotsRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// OfficeHourResponse 答疑时段响应
type OfficeHourResponse struct {
	ID          string `json:"id"`
	ProfessorID string `json:"professor_id"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
	College     string `json:"college,omitempty"`
	Department  string `json:"department,omitempty"`
	CreatedAt   string `json:"created_at"`
}
