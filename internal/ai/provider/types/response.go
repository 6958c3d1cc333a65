package types

import (
	"errors"
	"strings"
)

// ChatCompletionResponse 聊天补全响应，未知字段忽略
type ChatCompletionResponse struct {
	ID      string   `json:"id,omitempty"`
	Model   string   `json:"model,omitempty"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// Choice 选择项
type Choice struct {
	Index        int            `json:"index"`
	Message      *ChoiceMessage `json:"message"`
	FinishReason string         `json:"finish_reason,omitempty"`
}

// ChoiceMessage 响应消息
type ChoiceMessage struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content"`
}

// Usage Token 使用统计（可选）
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// errMissingContent 第一个选择项缺少 message 或 content
var errMissingContent = errors.New("first choice has no message content")

// FirstContent 返回第一个选择项去除首尾空白后的内容
// 没有选择项返回 EmptyResponse；message 或 content 缺失、为 null 时返回 NetworkError
func (r *ChatCompletionResponse) FirstContent(statusCode int) (string, error) {
	if r == nil || len(r.Choices) == 0 {
		return "", NewEmptyResponseError(statusCode)
	}
	msg := r.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return "", NewNetworkError(errMissingContent)
	}
	return strings.TrimSpace(*msg.Content), nil
}
