package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// AssistantHandler AI 助手模块 HTTP 处理器
type AssistantHandler struct {
	assistantSvc service.AssistantService
}

// NewAssistantHandler 创建 AssistantHandler
func NewAssistantHandler(assistantSvc service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantSvc: assistantSvc}
}

// Send 学生向助手发消息
// POST /api/v1/student/assistant/messages
func (h *AssistantHandler) Send(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.assistantSvc.Send(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// History 对话记录
// GET /api/v1/student/assistant/messages
func (h *AssistantHandler) History(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.assistantSvc.History(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Suggestions 教授建议页
// GET /api/v1/professor/suggestions
func (h *AssistantHandler) Suggestions(c *gin.Context) {
	response.OK(c, h.assistantSvc.ProfessorSuggestions())
}

// Insights 系主任洞察页
// GET /api/v1/hod/insights
func (h *AssistantHandler) Insights(c *gin.Context) {
	response.OK(c, h.assistantSvc.HodInsights())
}
