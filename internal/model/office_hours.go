package model

// OfficeHour 教授答疑时段表 — 对应 office_hours
// DayOfWeek 存英文星期名（"Monday" 等），按周循环，不绑定具体日期
type OfficeHour struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessorID string  `gorm:"type:uuid;not null;index"                       json:"professor_id"`
	DayOfWeek   string  `gorm:"type:varchar(10);not null"                      json:"day_of_week"`
	StartTime   string  `gorm:"type:time;not null"                             json:"start_time"`
	EndTime     string  `gorm:"type:time;not null"                             json:"end_time"`
	IsAvailable bool    `gorm:"default:true"                                   json:"is_available"`
	College     *string `gorm:"type:varchar(100)"                              json:"college,omitempty"`
	Department  *string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	Timestamps
}

// TableName 指定表名
func (OfficeHour) TableName() string { return "office_hours" }
