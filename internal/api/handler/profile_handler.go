package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// ProfileHandler 档案模块 HTTP 处理器
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler 创建 ProfileHandler
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// GetMine 我的档案
// GET /api/v1/profiles/me
func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.profileSvc.GetMine(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			response.NotFound(c, 12001, "档案不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateMine 更新我的档案
// PUT /api/v1/profiles/me
func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.profileSvc.UpdateMine(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			response.NotFound(c, 12001, "档案不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListProfessors 教授列表（学生选人用）
// GET /api/v1/student/professors
func (h *ProfileHandler) ListProfessors(c *gin.Context) {
	result, err := h.profileSvc.ListProfessors(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListStudents 学生名册（教授查看）
// GET /api/v1/professor/students
func (h *ProfileHandler) ListStudents(c *gin.Context) {
	result, err := h.profileSvc.ListStudents(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
