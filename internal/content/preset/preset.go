// Package preset 内容工具的提示词预设
// 每个预设是输入到 Spec 的纯函数，不做任何 I/O
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
)

// Tool 内容工具名称
type Tool string

const (
	ToolSEOContent      Tool = "seo-content"
	ToolSEOArticle      Tool = "seo-article"
	ToolHumanize        Tool = "humanize"
	ToolKeywords        Tool = "keywords"
	ToolMetaTags        Tool = "meta-tags"
	ToolEmailOutreach   Tool = "email-outreach"
	ToolYouTubeScript   Tool = "youtube-script"
	ToolYouTubeSEO      Tool = "youtube-seo"
	ToolYouTubeTags     Tool = "youtube-tags"
	ToolVideoIdeas      Tool = "video-ideas"
	ToolPromptGenerator Tool = "prompt-generator"
	ToolAIDetector      Tool = "ai-detector"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrFieldRequired    = errors.New("field is required")
	ErrInvalidDetection = errors.New("invalid response format")
)

// Spec 一次生成调用的完整参数
type Spec struct {
	SystemPrompt string
	Prompt       string
	Options      types.GenerateOptions
}

// Input 工具输入，负责校验并构造 Spec
type Input interface {
	Build() (Spec, error)
}

// Tools 返回所有工具，顺序固定
func Tools() []Tool {
	return []Tool{
		ToolSEOArticle,
		ToolSEOContent,
		ToolKeywords,
		ToolMetaTags,
		ToolHumanize,
		ToolAIDetector,
		ToolEmailOutreach,
		ToolPromptGenerator,
		ToolYouTubeScript,
		ToolYouTubeSEO,
		ToolYouTubeTags,
		ToolVideoIdeas,
	}
}

// NewInput 返回工具对应的空输入，用于请求体绑定
func NewInput(tool Tool) (Input, error) {
	switch tool {
	case ToolSEOContent:
		return &SEOContentInput{}, nil
	case ToolSEOArticle:
		return &SEOArticleInput{}, nil
	case ToolHumanize:
		return &HumanizeInput{}, nil
	case ToolKeywords:
		return &KeywordsInput{}, nil
	case ToolMetaTags:
		return &MetaTagsInput{}, nil
	case ToolEmailOutreach:
		return &EmailOutreachInput{}, nil
	case ToolYouTubeScript:
		return &YouTubeScriptInput{}, nil
	case ToolYouTubeSEO:
		return &YouTubeSEOInput{}, nil
	case ToolYouTubeTags:
		return &YouTubeTagsInput{}, nil
	case ToolVideoIdeas:
		return &VideoIdeasInput{}, nil
	case ToolPromptGenerator:
		return &PromptGeneratorInput{}, nil
	case ToolAIDetector:
		return &AIDetectorInput{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, tool)
	}
}

func newSpec(systemPrompt, prompt string, opts ...types.Option) Spec {
	return Spec{
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
		Options:      types.ResolveOptions(opts...),
	}
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, name)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// humanLabel 将 cold_outreach 一类的选项值转为可读文本，只替换第一个下划线
func humanLabel(value string) string {
	return strings.Replace(value, "_", " ", 1)
}

// lines 按行拼接模板，空字符串表示的可选行会被省略
type lines []string

func (l lines) optional(label, value string) lines {
	if strings.TrimSpace(value) == "" {
		return l
	}
	return append(l, label+": "+value)
}

func (l lines) add(s ...string) lines {
	return append(l, s...)
}

func (l lines) String() string {
	return strings.Join(l, "\n")
}
