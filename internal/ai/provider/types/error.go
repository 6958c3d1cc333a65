package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 生成失败的分类
type ErrorKind string

const (
	ErrorKindMissingCredential   ErrorKind = "missing_credential"   // 凭证为空，未发起请求
	ErrorKindInvalidCredential   ErrorKind = "invalid_credential"   // 401
	ErrorKindInsufficientBalance ErrorKind = "insufficient_balance" // 402
	ErrorKindRateLimited         ErrorKind = "rate_limited"         // 429
	ErrorKindRemote              ErrorKind = "remote_error"         // 其他非 2xx
	ErrorKindEmptyResponse       ErrorKind = "empty_response"       // 2xx 但没有 choices
	ErrorKindNetwork             ErrorKind = "network_error"        // 网络或解析失败
)

// 面向用户的固定提示
const (
	MessageMissingCredential   = "API key is required. Please configure your OpenRouter API key in settings."
	MessageInvalidCredential   = "Invalid API key. Please check your OpenRouter API key in settings."
	MessageInsufficientBalance = "Insufficient credits. Please check your OpenRouter account balance."
	MessageRateLimited         = "Rate limit exceeded. Please try again in a moment."
	MessageEmptyResponse       = "No response generated. Please try again."
	MessageNetwork             = "Failed to generate content. Please check your internet connection and try again."
)

// 每个分类对应的哨兵错误，支持 errors.Is
var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRateLimited         = errors.New("rate limited")
	ErrRemote              = errors.New("remote error")
	ErrEmptyResponse       = errors.New("empty response")
	ErrNetwork             = errors.New("network error")
)

var kindSentinels = map[ErrorKind]error{
	ErrorKindMissingCredential:   ErrMissingCredential,
	ErrorKindInvalidCredential:   ErrInvalidCredential,
	ErrorKindInsufficientBalance: ErrInsufficientBalance,
	ErrorKindRateLimited:         ErrRateLimited,
	ErrorKindRemote:              ErrRemote,
	ErrorKindEmptyResponse:       ErrEmptyResponse,
	ErrorKindNetwork:             ErrNetwork,
}

// GenerationError 已分类的生成错误
// Error() 只返回面向用户的消息，底层原因通过 Unwrap 获取
type GenerationError struct {
	Kind       ErrorKind // 错误分类
	StatusCode int       // HTTP 状态码（未发起请求时为 0）
	Message    string    // 面向用户的消息
	Err        error     // 原始错误
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is 让 errors.Is(err, ErrRateLimited) 等判断按分类匹配
func (e *GenerationError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// Detail 返回带分类与状态码的调试描述，可安全写入日志
func (e *GenerationError) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Kind, httpStatusText(e.StatusCode), e.Message, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Kind, httpStatusText(e.StatusCode), e.Message)
}

// NewGenerationError 创建分类错误
func NewGenerationError(kind ErrorKind, statusCode int, message string, err error) *GenerationError {
	return &GenerationError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewMissingCredentialError 凭证缺失
func NewMissingCredentialError() *GenerationError {
	return NewGenerationError(ErrorKindMissingCredential, 0, MessageMissingCredential, nil)
}

// NewNetworkError 网络或解析失败
func NewNetworkError(err error) *GenerationError {
	return NewGenerationError(ErrorKindNetwork, 0, MessageNetwork, err)
}

// NewEmptyResponseError 响应中没有 choices
func NewEmptyResponseError(statusCode int) *GenerationError {
	return NewGenerationError(ErrorKindEmptyResponse, statusCode, MessageEmptyResponse, nil)
}

// ClassifyStatus 按 HTTP 状态码分类非 2xx 响应
// remoteMessage 为远端 error.message，仅在无法归入固定分类时使用
func ClassifyStatus(statusCode int, remoteMessage string) *GenerationError {
	switch statusCode {
	case http.StatusUnauthorized:
		return NewGenerationError(ErrorKindInvalidCredential, statusCode, MessageInvalidCredential, nil)
	case http.StatusPaymentRequired:
		return NewGenerationError(ErrorKindInsufficientBalance, statusCode, MessageInsufficientBalance, nil)
	case http.StatusTooManyRequests:
		return NewGenerationError(ErrorKindRateLimited, statusCode, MessageRateLimited, nil)
	}

	message := remoteMessage
	if message == "" {
		message = fmt.Sprintf("API request failed with status %d", statusCode)
	}
	return NewGenerationError(ErrorKindRemote, statusCode, message, nil)
}

// AsGenerationError 提取分类错误
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}

// httpStatusText 返回 HTTP 状态码文本
func httpStatusText(code int) string {
	if code == 0 {
		return "no status"
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("Status %d", code)
}
