package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// AnalyticsHandler 统计与声誉模块 HTTP 处理器
type AnalyticsHandler struct {
	analyticsSvc  service.AnalyticsService
	reputationSvc service.ReputationService
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService, reputationSvc service.ReputationService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc, reputationSvc: reputationSvc}
}

// Overview 系主任统计总览
// GET /api/v1/hod/analytics
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	result, err := h.analyticsSvc.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Engagement 教授参与度统计
// GET /api/v1/professor/stats
func (h *AnalyticsHandler) Engagement(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.EngagementStats(c.Request.Context(), professorID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Reputation 教授声誉面板
// GET /api/v1/hod/reputation
func (h *AnalyticsHandler) Reputation(c *gin.Context) {
	result, err := h.reputationSvc.Panel(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
