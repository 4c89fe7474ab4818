package dto

// ── AI 助手模块 DTO ──

// AssistantMessageRequest 学生向助手发送消息
type AssistantMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// TranscriptEntry 对话记录条目（user / assistant 交替）
type TranscriptEntry struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// AssistantReplyResponse 助手回复
type AssistantReplyResponse struct {
	Reply string `json:"reply"`
}

// InsightEntry 静态洞察条目（教授建议页 / 系主任洞察页共用）
type InsightEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
