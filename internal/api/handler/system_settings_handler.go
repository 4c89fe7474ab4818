package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// SystemSettingsHandler 系统配置模块 HTTP 处理器
type SystemSettingsHandler struct {
	settingsSvc service.SystemSettingsService
}

// NewSystemSettingsHandler 创建 SystemSettingsHandler
func NewSystemSettingsHandler(settingsSvc service.SystemSettingsService) *SystemSettingsHandler {
	return &SystemSettingsHandler{settingsSvc: settingsSvc}
}

// Get 当前配置快照
// GET /api/v1/hod/settings
func (h *SystemSettingsHandler) Get(c *gin.Context) {
	response.OK(c, h.settingsSvc.Get())
}

// Update 更新配置（仅进程内生效）
// PUT /api/v1/hod/settings
func (h *SystemSettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSystemSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	response.OK(c, h.settingsSvc.Update(&req))
}
