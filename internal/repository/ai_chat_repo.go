package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/model"
)

// AIChatRepository AI 助手对话记录数据访问接口
type AIChatRepository interface {
	Create(ctx context.Context, chat *model.AIChat) error
	// ListByUser 按创建顺序返回某用户的全部对话行（单一连续对话，无线程）
	ListByUser(ctx context.Context, userID string) ([]model.AIChat, error)
}

type aiChatRepo struct {
	db *gorm.DB
}

// NewAIChatRepo 创建 AIChatRepository 实例
func NewAIChatRepo(db *gorm.DB) AIChatRepository {
	return &aiChatRepo{db: db}
}

func (r *aiChatRepo) Create(ctx context.Context, chat *model.AIChat) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *aiChatRepo) ListByUser(ctx context.Context, userID string) ([]model.AIChat, error) {
	var chats []model.AIChat
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}
