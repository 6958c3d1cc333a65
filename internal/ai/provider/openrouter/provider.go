package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/pkg/httpclient"
	"github.com/tidwall/gjson"
)

const (
	chatCompletionsPath = "/chat/completions"
	authKeyPath         = "/auth/key"
)

// Provider OpenRouter 补全适配器
// 只保存构造时确定的常量，实例可以在多个 goroutine 间共享
type Provider struct {
	baseURL  string
	referer  string
	appTitle string
	client   *http.Client
}

// New 创建适配器，使用按配置超时构造的共享 HTTP 客户端
func New(config *types.Config) (*Provider, error) {
	if config == nil {
		config = types.DefaultConfig()
	}
	return NewWithClient(config, httpclient.New(config.Timeout))
}

// NewWithClient 使用指定的 HTTP 客户端创建适配器，client 为 nil 时按配置创建
func NewWithClient(config *types.Config, client *http.Client) (*Provider, error) {
	if config == nil {
		config = types.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = httpclient.New(config.Timeout)
	}

	return &Provider{
		baseURL:  config.BaseURL,
		referer:  config.Referer,
		appTitle: config.AppTitle,
		client:   client,
	}, nil
}

// Name 返回 Provider 名称
func (p *Provider) Name() string {
	return "openrouter"
}

// setHeaders 设置认证头与用量归属头
func (p *Provider) setHeaders(req *http.Request, credential string, includeContentType bool) {
	if includeContentType {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	if p.referer != "" {
		req.Header.Set("HTTP-Referer", p.referer)
	}
	if p.appTitle != "" {
		req.Header.Set("X-Title", p.appTitle)
	}
}

// Generate 发送一次聊天补全请求，返回第一个选择项的文本
// 所有失败都以 *types.GenerationError 返回
func (p *Provider) Generate(ctx context.Context, prompt, systemPrompt, credential string, opts ...types.Option) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", types.NewMissingCredentialError()
	}

	req := types.BuildRequest(prompt, systemPrompt, types.ResolveOptions(opts...))

	resp, err := p.CreateChatCompletion(ctx, req, credential)
	if err != nil {
		return "", err
	}

	return resp.FirstContent(http.StatusOK)
}

// CreateChatCompletion 发送已构造好的请求
// 不做重试；非 2xx 按状态码分类
func (p *Provider) CreateChatCompletion(ctx context.Context, req types.ChatCompletionRequest, credential string) (*types.ChatCompletionResponse, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, types.NewMissingCredentialError()
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("marshal request failed: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+chatCompletionsPath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("create request failed: %w", err))
	}

	p.setHeaders(httpReq, credential, true)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("read response failed: %w", err))
	}

	if !isSuccess(resp.StatusCode) {
		return nil, types.ClassifyStatus(resp.StatusCode, remoteErrorMessage(body))
	}

	var chatResp types.ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("unmarshal response failed: %w", err))
	}

	if len(chatResp.Choices) == 0 {
		return nil, types.NewEmptyResponseError(resp.StatusCode)
	}

	return &chatResp, nil
}

// VerifyKey 通过 /auth/key 校验凭证是否可用
func (p *Provider) VerifyKey(ctx context.Context, credential string) error {
	if strings.TrimSpace(credential) == "" {
		return types.NewMissingCredentialError()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+authKeyPath, nil)
	if err != nil {
		return types.NewNetworkError(fmt.Errorf("create request failed: %w", err))
	}

	p.setHeaders(httpReq, credential, false)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return types.NewNetworkError(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.NewNetworkError(fmt.Errorf("read response failed: %w", err))
	}

	if !isSuccess(resp.StatusCode) {
		return types.ClassifyStatus(resp.StatusCode, remoteErrorMessage(body))
	}
	return nil
}

// Close 释放空闲连接
func (p *Provider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// remoteErrorMessage 读取 {"error":{"message":"..."}}，结构不符时返回空串
func remoteErrorMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	msg := gjson.GetBytes(body, "error.message")
	if msg.Type != gjson.String {
		return ""
	}
	return msg.String()
}
