package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/model"
)

// UserRoleRepository 角色行数据访问接口
type UserRoleRepository interface {
	Create(ctx context.Context, role *model.UserRole) error
	ListByUserID(ctx context.Context, userID string) ([]model.UserRole, error)
	ListByRole(ctx context.Context, role string) ([]model.UserRole, error)
	ListAll(ctx context.Context) ([]model.UserRole, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type userRoleRepo struct {
	db *gorm.DB
}

// NewUserRoleRepo 创建 UserRoleRepository 实例
func NewUserRoleRepo(db *gorm.DB) UserRoleRepository {
	return &userRoleRepo{db: db}
}

func (r *userRoleRepo) Create(ctx context.Context, role *model.UserRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *userRoleRepo) ListByUserID(ctx context.Context, userID string) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRoleRepo) ListByRole(ctx context.Context, role string) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRoleRepo) ListAll(ctx context.Context) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := r.db.WithContext(ctx).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRoleRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserRole{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

func (r *userRoleRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserRole{}).Error
}
