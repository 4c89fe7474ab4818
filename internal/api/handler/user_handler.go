package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/service"
	scerrors "github.com/Msahu05/smart-campus-comms/pkg/errors"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// UserHandler 用户管理模块 HTTP 处理器（系主任侧）
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List 用户管理列表（按角色分组）
// GET /api/v1/hod/users
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.userSvc.ListManaged(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete 删除用户
// DELETE /api/v1/hod/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.DeleteUser(c.Request.Context(), callerID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 16001, "用户不存在")
		case errors.Is(err, service.ErrUserSelfDelete):
			response.BadRequest(c, 16002, "不能删除自己")
		case errors.Is(err, scerrors.ErrProfileOrphaned):
			// 删除只完成了一半：明确报 500，避免前端误以为删除干净
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
