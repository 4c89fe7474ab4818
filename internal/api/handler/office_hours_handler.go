package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// OfficeHoursHandler 答疑时段模块 HTTP 处理器
type OfficeHoursHandler struct {
	officeHoursSvc service.OfficeHoursService
}

// NewOfficeHoursHandler 创建 OfficeHoursHandler
func NewOfficeHoursHandler(officeHoursSvc service.OfficeHoursService) *OfficeHoursHandler {
	return &OfficeHoursHandler{officeHoursSvc: officeHoursSvc}
}

// Create 新建答疑时段
// POST /api/v1/professor/office-hours
func (h *OfficeHoursHandler) Create(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOfficeHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.officeHoursSvc.Create(c.Request.Context(), professorID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListMine 我的答疑时段
// GET /api/v1/professor/office-hours
func (h *OfficeHoursHandler) ListMine(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.officeHoursSvc.ListMine(c.Request.Context(), professorID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete 删除答疑时段
// DELETE /api/v1/professor/office-hours/:id
func (h *OfficeHoursHandler) Delete(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.officeHoursSvc.Delete(c.Request.Context(), professorID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrOfficeHourNotFound):
			response.NotFound(c, 14001, "答疑时段不存在")
		case errors.Is(err, service.ErrNotYourOfficeHour):
			response.Forbidden(c, 14002, "该答疑时段不属于当前教授")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// AvailableSlots 学生按日期查询某教授的可约时段
// GET /api/v1/student/professors/:id/office-hours?date=2026-08-31
func (h *OfficeHoursHandler) AvailableSlots(c *gin.Context) {
	var req dto.AvailableSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "date 参数缺失或格式错误")
		return
	}

	result, err := h.officeHoursSvc.ListAvailableSlots(c.Request.Context(), c.Param("id"), req.Date)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
