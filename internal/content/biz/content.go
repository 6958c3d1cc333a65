package biz

import (
	"context"
	"fmt"
	"time"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/content/preset"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/render"
	"go.uber.org/zap"
)

// CredentialLookup 按调用方读取凭证，未配置时返回空字符串
type CredentialLookup interface {
	Lookup(ctx context.Context, owner string) (string, error)
}

// Result 一次工具调用的结果
type Result struct {
	Tool      preset.Tool
	Text      string
	HTML      string
	Tags      []string
	Detection *preset.Detection
}

// ContentUseCase 执行内容工具：构造预设、读取凭证、调用生成、后处理
// 调用之间不保留任何状态
type ContentUseCase struct {
	generator   types.Generator
	credentials CredentialLookup
	renderer    *render.Renderer
	logger      *logger.Logger
}

// NewContentUseCase 创建内容用例
func NewContentUseCase(generator types.Generator, credentials CredentialLookup, renderer *render.Renderer, logger *logger.Logger) *ContentUseCase {
	return &ContentUseCase{
		generator:   generator,
		credentials: credentials,
		renderer:    renderer,
		logger:      logger.Named("content"),
	}
}

// Tools 返回可用工具
func (uc *ContentUseCase) Tools() []preset.Tool {
	return preset.Tools()
}

// Run 执行工具
func (uc *ContentUseCase) Run(ctx context.Context, owner string, tool preset.Tool, input preset.Input, format render.Format) (*Result, error) {
	spec, err := input.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	credential, err := uc.credentials.Lookup(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to read api key: %w", err)
	}

	log := uc.logger.WithContext(ctx).With(
		zap.String("tool", string(tool)),
		zap.String("model", spec.Options.Model),
	)

	start := time.Now()
	text, err := uc.generator.Generate(ctx, spec.Prompt, spec.SystemPrompt, credential, spec.Options.Options()...)
	if err != nil {
		if genErr, ok := types.AsGenerationError(err); ok {
			log.Warn("generation failed",
				zap.String("kind", string(genErr.Kind)),
				zap.Int("status", genErr.StatusCode),
				zap.Duration("latency", time.Since(start)),
			)
		}
		return nil, err
	}

	log.Info("generation completed",
		zap.Int("length", len(text)),
		zap.Duration("latency", time.Since(start)),
	)

	return uc.postProcess(tool, text, format)
}

func (uc *ContentUseCase) postProcess(tool preset.Tool, text string, format render.Format) (*Result, error) {
	result := &Result{Tool: tool, Text: text}

	switch tool {
	case preset.ToolAIDetector:
		detection, err := preset.ParseDetection(text)
		if err != nil {
			return nil, err
		}
		result.Detection = detection
		return result, nil
	case preset.ToolYouTubeTags:
		result.Tags = preset.SplitTags(text)
		return result, nil
	}

	switch format {
	case render.FormatHTML:
		out, err := uc.renderer.HTML(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
		result.HTML = out
	case render.FormatPlain:
		out, err := uc.renderer.PlainText(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}
		result.Text = out
	}

	return result, nil
}
