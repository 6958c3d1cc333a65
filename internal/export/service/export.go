package service

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/content/preset"
	"github.com/lk2023060901/premio-backend/internal/export/biz"
	apperrors "github.com/lk2023060901/premio-backend/internal/pkg/errors"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/response"
	"go.uber.org/zap"
)

// CreateExportRequest 导出请求
type CreateExportRequest struct {
	Tool    string `json:"tool" binding:"required"`
	Subject string `json:"subject"`
	Content string `json:"content" binding:"required"`
}

// ExportResponse 导出结果
type ExportResponse struct {
	Object    string `json:"object"`
	FileName  string `json:"file_name"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

// ExportService 导出 HTTP 服务
type ExportService struct {
	uc     *biz.ExportUseCase
	logger *logger.Logger
}

// NewExportService 创建导出服务
func NewExportService(uc *biz.ExportUseCase, logger *logger.Logger) *ExportService {
	return &ExportService{
		uc:     uc,
		logger: logger,
	}
}

// Create 导出文本
func (s *ExportService) Create(c *gin.Context) {
	if !s.uc.Enabled() {
		response.ErrorWithCode(c, apperrors.ErrExportDisabled)
		return
	}

	var req CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrExportInvalidInput, "tool and content are required")
		return
	}

	export, err := s.uc.Create(c.Request.Context(), middleware.GetClientID(c), preset.Tool(req.Tool), req.Subject, req.Content)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response.Created(c, &ExportResponse{
		Object:    export.Object,
		FileName:  export.FileName,
		URL:       export.URL,
		ExpiresAt: export.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (s *ExportService) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, biz.ErrExportDisabled):
		response.ErrorWithCode(c, apperrors.ErrExportDisabled)
	case errors.Is(err, preset.ErrUnknownTool):
		response.ErrorWithCode(c, apperrors.ErrExportInvalidInput, "unknown tool")
	case errors.Is(err, biz.ErrContentRequired):
		response.ErrorWithCode(c, apperrors.ErrExportInvalidInput, err.Error())
	default:
		s.logger.WithContext(c.Request.Context()).Error("export failed", zap.Error(err))
		response.HandleError(c, apperrors.Wrap(err, apperrors.ErrExportFailed))
	}
}
