package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
)

// ReputationService 教授声誉面板业务接口
type ReputationService interface {
	// Panel 逐个教授统计提问量、已解决量（status == "resolved"）、
	// 预约量与解决率，按解决率降序返回
	Panel(ctx context.Context) ([]dto.ReputationEntry, error)
}

type reputationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReputationService 创建 ReputationService 实例
func NewReputationService(repo *repository.Repository, logger *zap.Logger) ReputationService {
	return &reputationService{repo: repo, logger: logger}
}

func (s *reputationService) Panel(ctx context.Context) ([]dto.ReputationEntry, error) {
	rows, err := s.repo.UserRole.ListByRole(ctx, model.RoleProfessor)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	profiles, err := nameMap(ctx, s.repo, ids)
	if err != nil {
		return nil, err
	}

	// 逐个教授串行取数。教授量级是系内规模，
	// 保持一人一查的朴素写法，暂不做聚合查询
	entries := make([]dto.ReputationEntry, 0, len(rows))
	for _, r := range rows {
		queries, err := s.repo.Query.ListByProfessor(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		appts, err := s.repo.Appointment.CountByProfessor(ctx, r.UserID)
		if err != nil {
			return nil, err
		}

		resolved := 0
		for _, q := range queries {
			if q.Status == model.QueryStatusResolved {
				resolved++
			}
		}

		entry := dto.ReputationEntry{
			ProfessorID:       r.UserID,
			TotalQueries:      len(queries),
			ResolvedQueries:   resolved,
			TotalAppointments: appts,
		}
		if len(queries) > 0 {
			entry.ResolutionRate = float64(resolved) / float64(len(queries)) * 100
		}
		if p, ok := profiles[r.UserID]; ok {
			entry.FullName = p.FullName
			if p.Department != nil {
				entry.Department = *p.Department
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ResolutionRate > entries[j].ResolutionRate
	})
	return entries, nil
}
