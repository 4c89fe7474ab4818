package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// AppointmentHandler 预约模块 HTTP 处理器
type AppointmentHandler struct {
	appointmentSvc service.AppointmentService
}

// NewAppointmentHandler 创建 AppointmentHandler
func NewAppointmentHandler(appointmentSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

// Book 学生预约
// POST /api/v1/student/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.appointmentSvc.Book(c.Request.Context(), studentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotBookable):
			response.BadRequest(c, 15001, "所选时段不可预约")
		case errors.Is(err, service.ErrDateMismatch):
			response.BadRequest(c, 15005, "所选日期与时段的星期不符")
		case errors.Is(err, service.ErrSlotRejected):
			response.BadRequest(c, 15002, "预约被冲突策略拒绝")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// ListMine 我的预约（学生）
// GET /api/v1/student/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.appointmentSvc.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListForProfessor 教授名下全部预约
// GET /api/v1/professor/appointments
func (h *AppointmentHandler) ListForProfessor(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.appointmentSvc.ListForProfessor(c.Request.Context(), professorID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListPending 教授待审批预约
// GET /api/v1/professor/appointments/pending
func (h *AppointmentHandler) ListPending(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.appointmentSvc.ListPending(c.Request.Context(), professorID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Approve 批准预约
// PUT /api/v1/professor/appointments/:id/approve
func (h *AppointmentHandler) Approve(c *gin.Context) {
	// 提示文案声称已通知学生；实际没有任何通知通道，文案保持原样
	h.setStatus(c, h.appointmentSvc.Approve, "已批准预约，学生已收到通知")
}

// Reject 拒绝预约
// PUT /api/v1/professor/appointments/:id/reject
func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.setStatus(c, h.appointmentSvc.Reject, "已拒绝预约，学生已收到通知")
}

func (h *AppointmentHandler) setStatus(c *gin.Context, op func(ctx context.Context, professorID, appointmentID string) error, message string) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), professorID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			response.NotFound(c, 15003, "预约不存在")
		case errors.Is(err, service.ErrNotYourAppointment):
			response.Forbidden(c, 15004, "该预约不属于当前教授")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"message": message})
}
