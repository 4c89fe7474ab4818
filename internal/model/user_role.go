package model

import "time"

// UserRole 角色行表 — 对应 user_roles
// 一个用户可同时持有多行；权限判定按"任意一行等于目标角色"执行
type UserRole struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;index"                json:"role"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (UserRole) TableName() string { return "user_roles" }
