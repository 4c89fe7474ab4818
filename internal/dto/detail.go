package dto

// ── 明细视图模块 DTO ──

// DetailKind 明细视图种类（带标签的变体，按种类分派取数函数）
type DetailKind string

const (
	DetailStudents        DetailKind = "students"
	DetailProfessors      DetailKind = "professors"
	DetailQueries         DetailKind = "queries"
	DetailResolvedQueries DetailKind = "resolved-queries"
	DetailPendingQueries  DetailKind = "pending-queries"
	DetailAppointments    DetailKind = "appointments"
)

// ParseDetailKind 解析并校验视图种类
func ParseDetailKind(s string) (DetailKind, bool) {
	switch DetailKind(s) {
	case DetailStudents, DetailProfessors, DetailQueries,
		DetailResolvedQueries, DetailPendingQueries, DetailAppointments:
		return DetailKind(s), true
	}
	return "", false
}

// Title 视图标题
func (k DetailKind) Title() string {
	switch k {
	case DetailStudents:
		return "All Students"
	case DetailProfessors:
		return "All Professors"
	case DetailQueries:
		return "All Queries"
	case DetailResolvedQueries:
		return "Resolved Queries"
	case DetailPendingQueries:
		return "Pending Queries"
	case DetailAppointments:
		return "All Appointments"
	}
	return ""
}

// DetailResponse 明细视图响应
// 按 Kind 只填充对应的一个列表字段
type DetailResponse struct {
	Kind         DetailKind            `json:"kind"`
	Title        string                `json:"title"`
	Profiles     []ProfileResponse     `json:"profiles,omitempty"`
	Queries      []QueryResponse       `json:"queries,omitempty"`
	Appointments []AppointmentResponse `json:"appointments,omitempty"`
}
