package preset

import (
	"fmt"
	"strings"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
)

const seoContentSystemPrompt = `You are an expert SEO content writer and digital marketing specialist. Create high-quality, engaging, and SEO-optimized content that ranks well in search engines. Always focus on:

1. Natural keyword integration
2. Reader engagement and value
3. Proper structure with headings
4. Clear, compelling writing
5. Search intent fulfillment

Respond with well-structured, professional content that provides genuine value to readers.`

const humanizeSystemPrompt = `You are an expert content editor specializing in making AI-generated text sound more natural and human-written. Your task is to:

1. Remove overly formal or robotic language
2. Add natural flow and conversational elements
3. Vary sentence structure and length
4. Include subtle imperfections that make content feel authentic
5. Maintain the core message while improving readability
6. Add personality and human touches
7. Remove repetitive AI patterns

Return content that feels naturally written by a skilled human writer.`

const humanizeInstruction = "Please humanize this content to make it sound more natural and engaging:"

const keywordsSystemPrompt = `You are an expert SEO keyword researcher with access to YouTube trending data. Generate comprehensive, semantically related keywords that are valuable for SEO strategy. Focus on:

1. Long-tail variations
2. Question-based keywords
3. Commercial intent keywords
4. Related semantic keywords
5. Local variations (when applicable)
6. Different search intents (informational, commercial, transactional)
7. YouTube trending keywords and phrases
8. Viral content patterns

Return only the keywords as a plain list with one keyword per line. Do not add headings, numbering, bullets, or explanations.`

const metaTagsSystemPrompt = `You are an expert SEO specialist and conversion optimization expert. Generate clean, optimized meta tags that improve search engine visibility and social media sharing. Focus on:

1. SEO best practices
2. Character limits for titles and descriptions
3. Compelling copy that improves CTR with emotional triggers
4. Proper Open Graph implementation
5. Complete Twitter Card setup
6. Schema.org structured data when relevant
7. Psychological triggers for higher engagement
8. A/B testing variations
9. Visual appeal with strategic formatting

Return well-organized HTML meta tags with clear sections, emojis for visual appeal, and ready-to-use code.`

// SEOContent 通用 SEO 内容生成
func SEOContent(prompt string) Spec {
	return newSpec(seoContentSystemPrompt, prompt,
		types.WithTemperature(0.7),
		types.WithMaxTokens(3000),
		types.WithHumanize(true),
	)
}

// Humanize 改写已有内容，使其更像人工撰写
func Humanize(content string) Spec {
	return newSpec(humanizeSystemPrompt, humanizeInstruction+"\n\n"+content,
		types.WithTemperature(0.8),
		types.WithMaxTokens(3000),
	)
}

// Keywords 根据种子关键词生成扁平的关键词列表
func Keywords(seedKeyword string) Spec {
	prompt := fmt.Sprintf(`Generate 25+ high-value SEO keywords related to: "%s". Mix short-tail, long-tail, question-based, commercial intent, and YouTube trending keywords. Output one keyword per line.`, seedKeyword)

	return newSpec(keywordsSystemPrompt, prompt,
		types.WithTemperature(0.6),
		types.WithMaxTokens(1500),
		types.WithHumanize(true),
	)
}

// SEOContentInput 自由提示词
type SEOContentInput struct {
	Prompt string `json:"prompt"`
}

func (in *SEOContentInput) Build() (Spec, error) {
	if err := required("prompt", in.Prompt); err != nil {
		return Spec{}, err
	}
	return SEOContent(in.Prompt), nil
}

// SEOArticleInput SEO 文章
type SEOArticleInput struct {
	Topic     string `json:"topic"`
	Tone      string `json:"tone"`
	WordCount int    `json:"word_count"`
}

const (
	defaultArticleTone      = "professional"
	defaultArticleWordCount = 1000
)

func (in *SEOArticleInput) Build() (Spec, error) {
	if err := required("topic", in.Topic); err != nil {
		return Spec{}, err
	}

	wordCount := in.WordCount
	if wordCount <= 0 {
		wordCount = defaultArticleWordCount
	}

	prompt := lines{
		fmt.Sprintf(`Write a comprehensive SEO-optimized article about "%s".`, strings.TrimSpace(in.Topic)),
		"",
		"Requirements:",
		"- Tone: " + orDefault(in.Tone, defaultArticleTone),
		fmt.Sprintf("- Target word count: %d words", wordCount),
		"- Include an engaging introduction with a hook",
		"- Use H2 and H3 headings for structure",
		"- Add a compelling conclusion with call-to-action",
		"- Naturally integrate relevant keywords",
		"- Focus on providing real value to readers",
		"- Make it scannable with bullet points and short paragraphs",
		"- Include actionable insights",
		"",
		"The article should rank well in search engines while being genuinely helpful and engaging for readers.",
	}

	return SEOContent(prompt.String()), nil
}

// HumanizeInput 待改写的内容
type HumanizeInput struct {
	Content string `json:"content"`
}

func (in *HumanizeInput) Build() (Spec, error) {
	if err := required("content", in.Content); err != nil {
		return Spec{}, err
	}
	return Humanize(in.Content), nil
}

// KeywordsInput 种子关键词
type KeywordsInput struct {
	SeedKeyword string `json:"seed_keyword"`
}

func (in *KeywordsInput) Build() (Spec, error) {
	if err := required("seed_keyword", in.SeedKeyword); err != nil {
		return Spec{}, err
	}
	return Keywords(strings.TrimSpace(in.SeedKeyword)), nil
}

// MetaTagsInput 页面元信息
type MetaTagsInput struct {
	PageTitle       string `json:"page_title"`
	PageDescription string `json:"page_description"`
	Keywords        string `json:"keywords"`
}

func (in *MetaTagsInput) Build() (Spec, error) {
	if err := required("page_title", in.PageTitle); err != nil {
		return Spec{}, err
	}

	prompt := lines{
		"Generate comprehensive meta tags for a webpage with the following details:",
		"",
		"Page Title: " + in.PageTitle,
	}.
		optional("Page Description", in.PageDescription).
		optional("Keywords", in.Keywords).
		add(
			"",
			"Please provide:",
			"1. Optimized meta title (55-60 characters) - Make it compelling and click-worthy",
			"2. Meta description (150-160 characters) - Include emotional triggers and CTAs",
			"3. Open Graph tags for social sharing",
			"4. Twitter Card tags",
			"5. Additional relevant meta tags",
			"6. JSON-LD structured data (if applicable)",
			"7. Alternative title variations for A/B testing",
			"8. Engaging social media snippets",
			"",
			"Format the output as clean, well-organized HTML with emojis and clear sections that can be copied directly into the <head> section.",
		)

	return newSpec(metaTagsSystemPrompt, prompt.String(),
		types.WithTemperature(0.3),
		types.WithMaxTokens(1500),
	), nil
}
