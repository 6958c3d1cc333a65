package biz

import "errors"

var (
	// ErrInvalidInput 工具输入不合法
	ErrInvalidInput = errors.New("invalid tool input")

	// ErrRenderFailed 输出格式转换失败
	ErrRenderFailed = errors.New("failed to render output")
)
