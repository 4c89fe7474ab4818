package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// DetailHandler 明细视图模块 HTTP 处理器
type DetailHandler struct {
	detailSvc service.DetailService
}

// NewDetailHandler 创建 DetailHandler
func NewDetailHandler(detailSvc service.DetailService) *DetailHandler {
	return &DetailHandler{detailSvc: detailSvc}
}

// View 明细视图
// GET /api/v1/hod/details/:kind
func (h *DetailHandler) View(c *gin.Context) {
	kind, ok := dto.ParseDetailKind(c.Param("kind"))
	if !ok {
		response.BadRequest(c, 18001, "未知的明细视图种类")
		return
	}

	result, err := h.detailSvc.View(c.Request.Context(), kind)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
