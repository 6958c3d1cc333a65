package biz

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lk2023060901/premio-backend/internal/content/preset"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/minio"
	"go.uber.org/zap"
)

var (
	// ErrExportDisabled 未配置对象存储
	ErrExportDisabled = errors.New("export storage is not configured")

	// ErrContentRequired 导出内容为空
	ErrContentRequired = errors.New("content is required")
)

// ObjectStore 导出文件的对象存储
type ObjectStore interface {
	ObjectName(name string) string
	PutText(ctx context.Context, objectName, fileName, content string) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
	PresignExpiry() time.Duration
	RemoveObject(ctx context.Context, objectName string) error
}

// Export 导出结果
type Export struct {
	Object    string
	FileName  string
	URL       string
	ExpiresAt time.Time
}

// ExportUseCase 将生成结果保存为文本文件并返回下载地址
type ExportUseCase struct {
	store  ObjectStore
	logger *logger.Logger
	now    func() time.Time
}

// NewExportUseCase 创建导出用例，store 为 nil 时导出不可用
func NewExportUseCase(store ObjectStore, logger *logger.Logger) *ExportUseCase {
	return &ExportUseCase{
		store:  store,
		logger: logger.Named("export"),
		now:    time.Now,
	}
}

// Enabled 是否可用
func (uc *ExportUseCase) Enabled() bool {
	return uc.store != nil
}

// Create 上传文本并生成预签名下载地址
func (uc *ExportUseCase) Create(ctx context.Context, owner string, tool preset.Tool, subject, content string) (*Export, error) {
	if !uc.Enabled() {
		return nil, ErrExportDisabled
	}
	if _, err := preset.NewInput(tool); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	fileName := FileName(tool, subject)
	object := uc.store.ObjectName(fmt.Sprintf("%s/%s/%s", owner, uuid.New().String(), fileName))

	if _, err := uc.store.PutText(ctx, object, fileName, content); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	expiry := uc.store.PresignExpiry()
	reqParams := url.Values{}
	reqParams.Set("response-content-disposition", minio.AttachmentDisposition(fileName))

	u, err := uc.store.PresignedGetObject(ctx, object, expiry, reqParams)
	if err != nil {
		// 没有下载地址的对象无法访问，直接清理
		if rmErr := uc.store.RemoveObject(ctx, object); rmErr != nil {
			uc.logger.WithContext(ctx).Warn("failed to remove unreachable export",
				zap.String("object", object),
				zap.Error(rmErr),
			)
		}
		return nil, fmt.Errorf("failed to presign export: %w", err)
	}

	uc.logger.WithContext(ctx).Info("export created",
		zap.String("tool", string(tool)),
		zap.String("object", object),
		zap.Int("size", len(content)),
	)

	return &Export{
		Object:    object,
		FileName:  fileName,
		URL:       u.String(),
		ExpiresAt: uc.now().Add(expiry),
	}, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug 小写并将连续空白替换为 '-'
func Slug(s string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "-"))
}

// FileName 下载文件名
func FileName(tool preset.Tool, subject string) string {
	if tool == preset.ToolHumanize {
		return "humanized-content.txt"
	}

	slug := strings.ReplaceAll(Slug(subject), "/", "-")
	if slug == "" {
		return string(tool) + ".txt"
	}
	return string(tool) + "-" + slug + ".txt"
}
