package biz

import "errors"

var (
	// ErrCredentialNotFound 未配置 API Key
	ErrCredentialNotFound = errors.New("api key not configured")

	// ErrOwnerRequired 调用方标识为空
	ErrOwnerRequired = errors.New("owner is required")
)
