package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"go.uber.org/zap"
)

// StorageKey 凭证的存储键名，按调用方加后缀隔离
const StorageKey = "premio-api-key"

// Key 返回调用方的存储键
func Key(owner string) string {
	return StorageKey + ":" + owner
}

// CredentialRepo 凭证存储，Get 在不存在时返回 ErrCredentialNotFound
type CredentialRepo interface {
	Get(ctx context.Context, owner string) (string, error)
	Save(ctx context.Context, owner, key string) error
	Delete(ctx context.Context, owner string) error
}

// Status 凭证状态，不包含凭证本身
type Status struct {
	Configured bool
	Hint       string
}

// CredentialUseCase 凭证的保存、读取与校验
type CredentialUseCase struct {
	repo     CredentialRepo
	verifier types.KeyVerifier
	logger   *logger.Logger
}

// NewCredentialUseCase 创建凭证用例
func NewCredentialUseCase(repo CredentialRepo, verifier types.KeyVerifier, logger *logger.Logger) *CredentialUseCase {
	return &CredentialUseCase{
		repo:     repo,
		verifier: verifier,
		logger:   logger.Named("credential"),
	}
}

// Save 保存凭证，去除首尾空白；空值等同于清除
func (uc *CredentialUseCase) Save(ctx context.Context, owner, key string) error {
	if owner == "" {
		return ErrOwnerRequired
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return uc.Delete(ctx, owner)
	}

	if err := uc.repo.Save(ctx, owner, key); err != nil {
		return fmt.Errorf("failed to save api key: %w", err)
	}

	uc.logger.Info("api key saved",
		zap.String("owner", owner),
		zap.Bool("configured", true),
	)
	return nil
}

// Get 读取凭证
func (uc *CredentialUseCase) Get(ctx context.Context, owner string) (string, error) {
	if owner == "" {
		return "", ErrOwnerRequired
	}

	key, err := uc.repo.Get(ctx, owner)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get api key: %w", err)
	}
	return key, nil
}

// Lookup 读取凭证，未配置时返回空字符串
// 空凭证交给补全适配器处理，由其报告缺少凭证
func (uc *CredentialUseCase) Lookup(ctx context.Context, owner string) (string, error) {
	key, err := uc.Get(ctx, owner)
	if errors.Is(err, ErrCredentialNotFound) {
		return "", nil
	}
	return key, err
}

// Delete 清除凭证，不存在时不报错
func (uc *CredentialUseCase) Delete(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrOwnerRequired
	}

	if err := uc.repo.Delete(ctx, owner); err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}

	uc.logger.Info("api key cleared", zap.String("owner", owner))
	return nil
}

// Status 返回是否已配置以及掩码提示
func (uc *CredentialUseCase) Status(ctx context.Context, owner string) (*Status, error) {
	key, err := uc.Lookup(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &Status{
		Configured: strings.TrimSpace(key) != "",
		Hint:       logger.MaskSecret(key),
	}, nil
}

// Verify 校验候选凭证；candidate 为空时校验已保存的凭证
// 返回补全适配器的分类错误
func (uc *CredentialUseCase) Verify(ctx context.Context, owner, candidate string) error {
	key := strings.TrimSpace(candidate)
	if key == "" {
		stored, err := uc.Lookup(ctx, owner)
		if err != nil {
			return err
		}
		key = stored
	}

	return uc.verifier.VerifyKey(ctx, key)
}
