package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/model"
)

// OfficeHourRepository 答疑时段数据访问接口
type OfficeHourRepository interface {
	Create(ctx context.Context, slot *model.OfficeHour) error
	GetByID(ctx context.Context, id string) (*model.OfficeHour, error)
	ListByProfessor(ctx context.Context, professorID string) ([]model.OfficeHour, error)
	// ListAvailable 取某教授在指定星期名下仍开放的时段
	ListAvailable(ctx context.Context, professorID, dayOfWeek string) ([]model.OfficeHour, error)
	Delete(ctx context.Context, id string) error
}

type officeHourRepo struct {
	db *gorm.DB
}

// NewOfficeHourRepo 创建 OfficeHourRepository 实例
func NewOfficeHourRepo(db *gorm.DB) OfficeHourRepository {
	return &officeHourRepo{db: db}
}

func (r *officeHourRepo) Create(ctx context.Context, slot *model.OfficeHour) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *officeHourRepo) GetByID(ctx context.Context, id string) (*model.OfficeHour, error) {
	var slot model.OfficeHour
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *officeHourRepo) ListByProfessor(ctx context.Context, professorID string) ([]model.OfficeHour, error) {
	var slots []model.OfficeHour
	err := r.db.WithContext(ctx).
		Where("professor_id = ?", professorID).
		Order("day_of_week, start_time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *officeHourRepo) ListAvailable(ctx context.Context, professorID, dayOfWeek string) ([]model.OfficeHour, error) {
	var slots []model.OfficeHour
	err := r.db.WithContext(ctx).
		Where("professor_id = ? AND day_of_week = ? AND is_available = ?", professorID, dayOfWeek, true).
		Order("start_time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *officeHourRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfficeHour{}).Error
}
