package service

// SaveAPIKeyRequest 保存 API Key，空字符串等同于清除
type SaveAPIKeyRequest struct {
	APIKey *string `json:"api_key" binding:"required"`
}

// VerifyAPIKeyRequest 校验 API Key，为空时校验已保存的凭证
type VerifyAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// APIKeyStatusResponse 凭证状态，不回显凭证
type APIKeyStatusResponse struct {
	Configured bool   `json:"configured"`
	Hint       string `json:"hint,omitempty"`
}

// VerifyAPIKeyResponse 校验结果
type VerifyAPIKeyResponse struct {
	Valid bool `json:"valid"`
}
