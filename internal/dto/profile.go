package dto

// ── 档案模块 DTO ──

// ProfileResponse 档案响应
type ProfileResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	College    string `json:"college,omitempty"`
	Department string `json:"department,omitempty"`
	Subject    string `json:"subject,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// UpdateProfileRequest 档案更新请求（仅本人）
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name"   binding:"omitempty,min=2,max=100"`
	College    *string `json:"college"     binding:"omitempty,max=100"`
	Department *string `json:"department"  binding:"omitempty,max=100"`
	Subject    *string `json:"subject"     binding:"omitempty,max=100"`
	RollNumber *string `json:"roll_number" binding:"omitempty,max=50"`
}

// StudentBrief 学生简要信息（教授查看学生名册时使用）
type StudentBrief struct {
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number,omitempty"`
}

// ProfessorBrief 教授简要信息（学生选择教授时使用）
type ProfessorBrief struct {
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	Subject    string `json:"subject,omitempty"`
}
