package service

import (
	"sync"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
)

// SystemSettingsService 系统配置业务接口。
// 开关只保存在进程内存里，重启即回到默认值，从不写库——
// system_settings 表虽然建了，但列名与这些开关并不对应，先保持现状。
type SystemSettingsService interface {
	Get() *dto.SystemSettingsResponse
	Update(req *dto.UpdateSystemSettingsRequest) *dto.SystemSettingsResponse
}

type systemSettingsService struct {
	mu       sync.RWMutex
	snapshot dto.SystemSettingsResponse
}

// NewSystemSettingsService 创建 SystemSettingsService 实例（全部开关默认开启）
func NewSystemSettingsService() SystemSettingsService {
	return &systemSettingsService{
		snapshot: dto.SystemSettingsResponse{
			EmailNotifications:         true,
			AutoAssignQueries:          true,
			AllowAnonymousQueries:      true,
			RequireAppointmentApproval: true,
		},
	}
}

func (s *systemSettingsService) Get() *dto.SystemSettingsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snapshot
	return &snap
}

func (s *systemSettingsService) Update(req *dto.UpdateSystemSettingsRequest) *dto.SystemSettingsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.EmailNotifications != nil {
		s.snapshot.EmailNotifications = *req.EmailNotifications
	}
	if req.AutoAssignQueries != nil {
		s.snapshot.AutoAssignQueries = *req.AutoAssignQueries
	}
	if req.AllowAnonymousQueries != nil {
		s.snapshot.AllowAnonymousQueries = *req.AllowAnonymousQueries
	}
	if req.RequireAppointmentApproval != nil {
		s.snapshot.RequireAppointmentApproval = *req.RequireAppointmentApproval
	}

	snap := s.snapshot
	return &snap
}
