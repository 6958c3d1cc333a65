package types

import "context"

// Generator 文本生成接口，由补全适配器实现
type Generator interface {
	// Generate 发送一次补全请求，返回去除首尾空白的文本
	Generate(ctx context.Context, prompt, systemPrompt, credential string, opts ...Option) (string, error)
}

// KeyVerifier 凭证校验接口
type KeyVerifier interface {
	VerifyKey(ctx context.Context, credential string) error
}
