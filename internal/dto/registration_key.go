package dto

// ── 注册密钥模块 DTO ──

// GenerateKeyRequest 生成教授注册密钥请求
type GenerateKeyRequest struct {
	Department string `json:"department" binding:"required,max=100"`
}

// RegistrationKeyResponse 注册密钥响应
type RegistrationKeyResponse struct {
	ID              string `json:"id"`
	RegistrationKey string `json:"registration_key"`
	College         string `json:"college"`
	Department      string `json:"department,omitempty"`
	ExpiresAt       string `json:"expires_at"`
	IsUsed          bool   `json:"is_used"`
	UsedBy          string `json:"used_by,omitempty"`
	CreatedAt       string `json:"created_at"`
}
