package types

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000

	// 以下参数固定，不对调用方开放
	FixedTopP             = 1.0
	FixedFrequencyPenalty = 0.0
	FixedPresencePenalty  = 0.0
)

// HumanizeDirective humanize 开启时追加到系统提示词末尾的风格指令
const HumanizeDirective = `
Make the output sound natural and human-written. Avoid robotic language, vary sentence structure, and add a touch of personality. Ensure the output is clean, simple, and free of symbols like asterisks or hashes.`

// GenerateOptions 单次生成的可选参数
type GenerateOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Humanize    bool
}

// Option 生成选项函数
type Option func(*GenerateOptions)

// WithModel 设置模型
func WithModel(model string) Option {
	return func(o *GenerateOptions) {
		if model != "" {
			o.Model = model
		}
	}
}

// WithTemperature 设置温度
func WithTemperature(temperature float64) Option {
	return func(o *GenerateOptions) {
		o.Temperature = temperature
	}
}

// WithMaxTokens 设置最大输出 token 数，非正数忽略
func WithMaxTokens(maxTokens int) Option {
	return func(o *GenerateOptions) {
		if maxTokens > 0 {
			o.MaxTokens = maxTokens
		}
	}
}

// WithHumanize 开启或关闭 humanize 风格指令
func WithHumanize(humanize bool) Option {
	return func(o *GenerateOptions) {
		o.Humanize = humanize
	}
}

// ResolveOptions 应用选项并返回最终参数
func ResolveOptions(opts ...Option) GenerateOptions {
	o := GenerateOptions{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Options 将参数转换回选项列表
func (o GenerateOptions) Options() []Option {
	return []Option{
		WithModel(o.Model),
		WithTemperature(o.Temperature),
		WithMaxTokens(o.MaxTokens),
		WithHumanize(o.Humanize),
	}
}

// BuildRequest 构造补全请求：一条 system 消息，一条 user 消息
func BuildRequest(prompt, systemPrompt string, o GenerateOptions) ChatCompletionRequest {
	finalSystemPrompt := systemPrompt
	if o.Humanize {
		finalSystemPrompt += HumanizeDirective
	}

	return ChatCompletionRequest{
		Model: o.Model,
		Messages: []Message{
			{Role: RoleSystem, Content: finalSystemPrompt},
			{Role: RoleUser, Content: prompt},
		},
		Temperature:      o.Temperature,
		MaxTokens:        o.MaxTokens,
		TopP:             FixedTopP,
		FrequencyPenalty: FixedFrequencyPenalty,
		PresencePenalty:  FixedPresencePenalty,
	}
}
