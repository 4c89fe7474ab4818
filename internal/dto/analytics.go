package dto

// ── 统计 / 声誉 / 用户管理 DTO ──

// AnalyticsResponse 全局统计响应
// Resolved/Pending 按提问行的 status 字面量 "resolved"/"pending" 过滤得出
type AnalyticsResponse struct {
	TotalStudents     int64 `json:"total_students"`
	TotalProfessors   int64 `json:"total_professors"`
	TotalQueries      int64 `json:"total_queries"`
	TotalAppointments int64 `json:"total_appointments"`
	ResolvedQueries   int64 `json:"resolved_queries"`
	PendingQueries    int64 `json:"pending_queries"`
}

// EngagementStatsResponse 教授参与度统计
type EngagementStatsResponse struct {
	TotalQueries      int64 `json:"total_queries"`
	TotalAppointments int64 `json:"total_appointments"`
}

// ReputationEntry 声誉面板单个教授条目
type ReputationEntry struct {
	ProfessorID       string  `json:"professor_id"`
	FullName          string  `json:"full_name"`
	Department        string  `json:"department,omitempty"`
	TotalQueries      int     `json:"total_queries"`
	ResolvedQueries   int     `json:"resolved_queries"`
	TotalAppointments int64   `json:"total_appointments"`
	ResolutionRate    float64 `json:"resolution_rate"`
}

// ManagedUser 用户管理列表条目
type ManagedUser struct {
	UserID     string   `json:"user_id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	College    string   `json:"college,omitempty"`
	Department string   `json:"department,omitempty"`
	Roles      []string `json:"roles"`
}

// UserManagementResponse 用户管理响应（按角色分组）
type UserManagementResponse struct {
	Students   []ManagedUser `json:"students"`
	Professors []ManagedUser `json:"professors"`
}
