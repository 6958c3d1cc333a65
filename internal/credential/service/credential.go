package service

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/credential/biz"
	apperrors "github.com/lk2023060901/premio-backend/internal/pkg/errors"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/response"
	"go.uber.org/zap"
)

// CredentialService API Key 设置接口
type CredentialService struct {
	uc     *biz.CredentialUseCase
	logger *logger.Logger
}

// NewCredentialService 创建凭证服务
func NewCredentialService(uc *biz.CredentialUseCase, logger *logger.Logger) *CredentialService {
	return &CredentialService{
		uc:     uc,
		logger: logger,
	}
}

// GetStatus 查询是否已配置
func (s *CredentialService) GetStatus(c *gin.Context) {
	status, err := s.uc.Status(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	response.Success(c, toStatusResponse(status))
}

// Save 保存 API Key
func (s *CredentialService) Save(c *gin.Context) {
	var req SaveAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCredentialInvalidInput, "api_key is required")
		return
	}

	owner := middleware.GetClientID(c)
	if err := s.uc.Save(c.Request.Context(), owner, *req.APIKey); err != nil {
		s.handleError(c, err)
		return
	}

	status, err := s.uc.Status(c.Request.Context(), owner)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response.Success(c, toStatusResponse(status))
}

// Delete 清除 API Key
func (s *CredentialService) Delete(c *gin.Context) {
	if err := s.uc.Delete(c.Request.Context(), middleware.GetClientID(c)); err != nil {
		s.handleError(c, err)
		return
	}

	response.Success(c, &APIKeyStatusResponse{Configured: false})
}

// Verify 校验 API Key
func (s *CredentialService) Verify(c *gin.Context) {
	var req VerifyAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ErrorWithCode(c, apperrors.ErrCredentialInvalidInput, err.Error())
		return
	}

	if err := s.uc.Verify(c.Request.Context(), middleware.GetClientID(c), req.APIKey); err != nil {
		s.handleError(c, err)
		return
	}

	response.Success(c, &VerifyAPIKeyResponse{Valid: true})
}

func (s *CredentialService) handleError(c *gin.Context, err error) {
	if appErr := apperrors.FromGeneration(err); appErr != nil {
		response.HandleError(c, appErr)
		return
	}

	switch {
	case errors.Is(err, biz.ErrCredentialNotFound):
		response.ErrorWithCode(c, apperrors.ErrCredentialNotFound)
	case errors.Is(err, biz.ErrOwnerRequired):
		response.ErrorWithCode(c, apperrors.ErrCredentialInvalidInput, err.Error())
	default:
		s.logger.WithContext(c.Request.Context()).Error("credential operation failed", zap.Error(err))
		response.HandleError(c, apperrors.Wrap(err, apperrors.ErrInternalServer))
	}
}

func toStatusResponse(status *biz.Status) *APIKeyStatusResponse {
	return &APIKeyStatusResponse{
		Configured: status.Configured,
		Hint:       status.Hint,
	}
}
