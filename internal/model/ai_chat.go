package model

import "time"

// AIChat AI 助手对话记录表 — 对应 ai_chats
// 仅追加：一行保存一次"提问 + 模板回复"，无会话/线程分组
type AIChat struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Message   string    `gorm:"type:text;not null"                             json:"message"`
	Response  string    `gorm:"type:text;not null"                             json:"response"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"                      json:"created_at"`
}

// TableName 指定表名
func (AIChat) TableName() string { return "ai_chats" }
