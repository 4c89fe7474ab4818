package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Analytics 导出统计数据为 Excel
// GET /api/v1/hod/export/analytics
func (h *ExportHandler) Analytics(c *gin.Context) {
	buf, filename, err := h.exportSvc.AnalyticsWorkbook(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// OfficeHoursCalendar 导出答疑时段为 ICS 日历
// GET /api/v1/professor/office-hours/calendar.ics
func (h *ExportHandler) OfficeHoursCalendar(c *gin.Context) {
	professorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.OfficeHoursCalendar(c.Request.Context(), professorID)
	if err != nil {
		if errors.Is(err, service.ErrExportNoOfficeHours) {
			response.NotFound(c, 19001, "没有可导出的答疑时段")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, icsContentType, buf.Bytes())
}

// AppointmentsCalendar 导出我的预约为 ICS 日历
// GET /api/v1/student/appointments/calendar.ics
func (h *ExportHandler) AppointmentsCalendar(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.AppointmentsCalendar(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, icsContentType, buf.Bytes())
}
