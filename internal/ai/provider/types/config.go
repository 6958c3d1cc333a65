package types

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultBaseURL OpenRouter API 根地址
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel 默认的低成本通用模型
	DefaultModel = "openai/gpt-4o-mini"
	// DefaultAppTitle 用于 OpenRouter 用量归属的应用名称
	DefaultAppTitle = "Premio - SEO Optimization Toolkit"
)

var (
	ErrMissingBaseURL = errors.New("base URL is required")
)

// Config 补全适配器配置
// 凭证不在配置中：每次调用由调用方传入
type Config struct {
	BaseURL  string        `mapstructure:"base_url"`  // API 基础 URL
	Referer  string        `mapstructure:"referer"`   // HTTP-Referer，调用方来源
	AppTitle string        `mapstructure:"app_title"` // X-Title，应用名称
	Timeout  time.Duration `mapstructure:"timeout"`   // 请求超时，0 表示不限制
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		AppTitle: DefaultAppTitle,
	}
}

// Validate 验证配置并填充默认值
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.AppTitle == "" {
		c.AppTitle = DefaultAppTitle
	}
	return nil
}
