package service

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/content/biz"
	"github.com/lk2023060901/premio-backend/internal/content/preset"
	apperrors "github.com/lk2023060901/premio-backend/internal/pkg/errors"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/render"
	"github.com/lk2023060901/premio-backend/internal/pkg/response"
	"go.uber.org/zap"
)

// ContentService 内容工具 HTTP 服务
type ContentService struct {
	uc     *biz.ContentUseCase
	logger *logger.Logger
}

// NewContentService 创建内容工具服务
func NewContentService(uc *biz.ContentUseCase, logger *logger.Logger) *ContentService {
	return &ContentService{
		uc:     uc,
		logger: logger,
	}
}

// ListTools 列出可用工具
func (s *ContentService) ListTools(c *gin.Context) {
	response.Success(c, &ListToolsResponse{Tools: s.uc.Tools()})
}

// RunTool 执行工具，请求体为该工具的输入
func (s *ContentService) RunTool(c *gin.Context) {
	tool := preset.Tool(c.Param("tool"))

	input, err := preset.NewInput(tool)
	if err != nil {
		s.handleError(c, err)
		return
	}

	format, err := render.ParseFormat(c.Query("format"))
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrToolInvalidInput, err.Error())
		return
	}

	if err := c.ShouldBindJSON(input); err != nil {
		response.ErrorWithCode(c, apperrors.ErrToolInvalidInput, "invalid request body")
		return
	}

	result, err := s.uc.Run(c.Request.Context(), middleware.GetClientID(c), tool, input, format)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response.Success(c, toRunToolResponse(result))
}

func (s *ContentService) handleError(c *gin.Context, err error) {
	if appErr := apperrors.FromGeneration(err); appErr != nil {
		response.HandleError(c, appErr)
		return
	}

	switch {
	case errors.Is(err, preset.ErrUnknownTool):
		response.ErrorWithCode(c, apperrors.ErrToolNotFound, c.Param("tool"))
	case errors.Is(err, preset.ErrFieldRequired):
		response.ErrorWithCode(c, apperrors.ErrToolInvalidInput, strings.TrimPrefix(err.Error(), biz.ErrInvalidInput.Error()+": "))
	case errors.Is(err, preset.ErrInvalidDetection):
		response.ErrorWithCode(c, apperrors.ErrToolInvalidDetection)
	case errors.Is(err, biz.ErrRenderFailed):
		s.logger.WithContext(c.Request.Context()).Error("render failed", zap.Error(err))
		response.ErrorWithCode(c, apperrors.ErrToolRenderFailed)
	default:
		s.logger.WithContext(c.Request.Context()).Error("tool run failed", zap.Error(err))
		response.HandleError(c, apperrors.Wrap(err, apperrors.ErrInternalServer))
	}
}
