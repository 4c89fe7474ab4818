package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
)

// ── 提问模块业务错误 ──

var (
	ErrQueryNotFound = errors.New("提问不存在")
	ErrNotYourQuery  = errors.New("该提问不属于当前教授")
)

// QueryService 提问业务接口
type QueryService interface {
	// Ask 学生向指定教授提问，新提问状态固定为 pending
	Ask(ctx context.Context, studentID string, req *dto.AskQueryRequest) (*dto.QueryResponse, error)
	ListMine(ctx context.Context, studentID string) ([]dto.QueryResponse, error)
	// Inbox 教授收件箱：发给该教授的全部提问，含学生姓名
	Inbox(ctx context.Context, professorID string) ([]dto.QueryResponse, error)
	// Respond 教授回复提问，状态置为 answered
	Respond(ctx context.Context, professorID, queryID string, req *dto.RespondQueryRequest) (*dto.QueryResponse, error)
}

type queryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewQueryService 创建 QueryService 实例
func NewQueryService(repo *repository.Repository, logger *zap.Logger) QueryService {
	return &queryService{repo: repo, logger: logger}
}

// ────────────────────── Ask ──────────────────────

func (s *queryService) Ask(ctx context.Context, studentID string, req *dto.AskQueryRequest) (*dto.QueryResponse, error) {
	// 教授 ID 只做非空校验（入参绑定层），不查角色行——历史行为如此
	query := &model.Query{
		StudentID:   studentID,
		ProfessorID: req.ProfessorID,
		Subject:     req.Subject,
		Question:    req.Question,
		Status:      model.QueryStatusPending,
	}

	// 学院/系快照取自教授档案，档案缺失时留空不拦截
	if prof, err := s.repo.Profile.GetByUserID(ctx, req.ProfessorID); err == nil {
		query.College = prof.College
		query.Department = prof.Department
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.Query.Create(ctx, query); err != nil {
		return nil, err
	}

	s.logger.Info("学生提问已创建",
		zap.String("query_id", query.ID),
		zap.String("student_id", studentID),
		zap.String("professor_id", req.ProfessorID))

	resp := toQueryResponse(query, nil)
	return &resp, nil
}

// ────────────────────── ListMine ──────────────────────

func (s *queryService) ListMine(ctx context.Context, studentID string) ([]dto.QueryResponse, error) {
	queries, err := s.repo.Query.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, queries)
}

// ────────────────────── Inbox ──────────────────────

func (s *queryService) Inbox(ctx context.Context, professorID string) ([]dto.QueryResponse, error) {
	queries, err := s.repo.Query.ListByProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, queries)
}

// ────────────────────── Respond ──────────────────────

func (s *queryService) Respond(ctx context.Context, professorID, queryID string, req *dto.RespondQueryRequest) (*dto.QueryResponse, error) {
	query, err := s.repo.Query.GetByID(ctx, queryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQueryNotFound
		}
		return nil, err
	}
	if query.ProfessorID != professorID {
		return nil, ErrNotYourQuery
	}

	query.Response = &req.Response
	query.Status = model.QueryStatusAnswered

	if err := s.repo.Query.Update(ctx, query); err != nil {
		return nil, err
	}

	resp := toQueryResponse(query, nil)
	return &resp, nil
}

// enrich 批量补全学生/教授姓名
func (s *queryService) enrich(ctx context.Context, queries []model.Query) ([]dto.QueryResponse, error) {
	ids := make([]string, 0, len(queries)*2)
	seen := make(map[string]struct{}, len(queries)*2)
	for _, q := range queries {
		for _, id := range []string{q.StudentID, q.ProfessorID} {
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

	out := make([]dto.QueryResponse, 0, len(queries))
	for i := range queries {
		out = append(out, toQueryResponse(&queries[i], names))
	}
	return out, nil
}

func toQueryResponse(q *model.Query, names map[string]model.Profile) dto.QueryResponse {
	resp := dto.QueryResponse{
		ID:          q.ID,
		StudentID:   q.StudentID,
		ProfessorID: q.ProfessorID,
		Subject:     q.Subject,
		Question:    q.Question,
		Status:      q.Status,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
	if q.Response != nil {
		resp.Response = *q.Response
	}
	if q.College != nil {
		resp.College = *q.College
	}
	if q.Department != nil {
		resp.Department = *q.Department
	}
	if names != nil {
		if p, ok := names[q.StudentID]; ok {
			resp.StudentName = p.FullName
		}
		if p, ok := names[q.ProfessorID]; ok {
			resp.ProfessorName = p.FullName
		}
	}
	return resp
}
