package dto

// ── 系统配置模块 DTO ──
//
// 配置开关与 system_settings 表的列并不对应：
// 历史行为是开关只改页面内存、从不落库，这里保留为进程内快照。

// SystemSettingsResponse 系统配置响应
type SystemSettingsResponse struct {
	EmailNotifications         bool `json:"email_notifications"`
	AutoAssignQueries          bool `json:"auto_assign_queries"`
	AllowAnonymousQueries      bool `json:"allow_anonymous_queries"`
	RequireAppointmentApproval bool `json:"require_appointment_approval"`
}

// UpdateSystemSettingsRequest 系统配置更新请求（仅进程内生效）
type UpdateSystemSettingsRequest struct {
	EmailNotifications         *bool `json:"email_notifications"`
	AutoAssignQueries          *bool `json:"auto_assign_queries"`
	AllowAnonymousQueries      *bool `json:"allow_anonymous_queries"`
	RequireAppointmentApproval *bool `json:"require_appointment_approval"`
}
