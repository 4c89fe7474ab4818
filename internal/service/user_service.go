package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
	scerrors "github.com/Msahu05/smart-campus-comms/pkg/errors"
)

// ── 用户管理模块业务错误 ──

var (
	ErrUserNotFound   = errors.New("用户不存在")
	ErrUserSelfDelete = errors.New("不能删除自己")
)

// UserService 用户管理业务接口（系主任侧）
type UserService interface {
	// ListManaged 全量用户按角色分组：学生一组、教授一组
	ListManaged(ctx context.Context) (*dto.UserManagementResponse, error)
	// DeleteUser 删除用户：先删角色行再删档案行，两步之间无事务，
	// 第二步失败时返回 ErrProfileOrphaned 标记残留
	DeleteUser(ctx context.Context, callerID, targetID string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListManaged(ctx context.Context) (*dto.UserManagementResponse, error) {
	roles, err := s.repo.UserRole.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.repo.Profile.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	roleMap := make(map[string][]string, len(profiles))
	for _, r := range roles {
		roleMap[r.UserID] = append(roleMap[r.UserID], r.Role)
	}

	resp := &dto.UserManagementResponse{
		Students:   []dto.ManagedUser{},
		Professors: []dto.ManagedUser{},
	}
	for _, p := range profiles {
		u := dto.ManagedUser{
			UserID:   p.UserID,
			FullName: p.FullName,
			Email:    p.Email,
			Roles:    roleMap[p.UserID],
		}
		if p.College != nil {
			u.College = *p.College
		}
		if p.Department != nil {
			u.Department = *p.Department
		}

		// 同时持有两种角色的用户会出现在两个分组里
		for _, role := range u.Roles {
			switch role {
			case model.RoleStudent:
				resp.Students = append(resp.Students, u)
			case model.RoleProfessor:
				resp.Professors = append(resp.Professors, u)
			}
		}
	}
	return resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID, targetID string) error {
	if callerID == targetID {
		return ErrUserSelfDelete
	}

	if _, err := s.repo.Profile.GetByUserID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// 两步删除，顺序固定：先角色后档案。中途失败不回滚
	if err := s.repo.UserRole.DeleteByUserID(ctx, targetID); err != nil {
		return err
	}
	if err := s.repo.Profile.DeleteByUserID(ctx, targetID); err != nil {
		s.logger.Error("档案删除失败，角色行已删除",
			zap.String("user_id", targetID),
			zap.Error(err))
		return scerrors.ErrProfileOrphaned
	}

	s.logger.Info("用户已删除", zap.String("user_id", targetID), zap.String("deleted_by", callerID))
	return nil
}
