// Package render 将模型生成的 Markdown 文本转换为 HTML 或纯文本
package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Engine Markdown 引擎
type Engine string

const (
	EngineGoldmark    Engine = "goldmark"
	EngineBlackfriday Engine = "blackfriday"
)

// Format 输出格式
type Format string

const (
	FormatText  Format = "text"  // 原样返回
	FormatHTML  Format = "html"  // Markdown 转 HTML
	FormatPlain Format = "plain" // 去除 Markdown 标记
)

// ParseFormat 解析输出格式，空字符串视为 text
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatHTML, FormatPlain:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Renderer Markdown 渲染器，可并发使用
type Renderer struct {
	engine Engine
	md     goldmark.Markdown
}

// New 创建渲染器，engine 为空时使用 goldmark
func New(engine Engine) (*Renderer, error) {
	switch engine {
	case "", EngineGoldmark:
		return &Renderer{
			engine: EngineGoldmark,
			md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		}, nil
	case EngineBlackfriday:
		return &Renderer{engine: EngineBlackfriday}, nil
	default:
		return nil, fmt.Errorf("unsupported markdown engine: %s", engine)
	}
}

// Engine 返回当前引擎
func (r *Renderer) Engine() Engine {
	return r.engine
}

// Render 按格式输出
func (r *Renderer) Render(src string, format Format) (string, error) {
	switch format {
	case FormatHTML:
		return r.HTML(src)
	case FormatPlain:
		return r.PlainText(src)
	default:
		return src, nil
	}
}

// HTML 将 Markdown 转换为 HTML，原始 HTML 片段不会透传
func (r *Renderer) HTML(src string) (string, error) {
	if r.engine == EngineBlackfriday {
		out := blackfriday.Run([]byte(src), blackfriday.WithRenderer(
			blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
				Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
			}),
		))
		return string(out), nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// PlainText 去除 Markdown 标记，每个块级元素占一行，不保留空行
func (r *Renderer) PlainText(src string) (string, error) {
	out, err := r.HTML(src)
	if err != nil {
		return "", err
	}
	return htmlToPlainText(out), nil
}

var (
	reScript   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	reStyle    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	reBlockEnd = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</li>|</tr>|</h[1-6]>`)
	reTag      = regexp.MustCompile(`<[^>]+>`)
)

func htmlToPlainText(s string) string {
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")
	s = reBlockEnd.ReplaceAllString(s, "\n")
	s = reTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	var cleaned []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return strings.Join(cleaned, "\n")
}
