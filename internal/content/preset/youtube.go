package preset

import (
	"fmt"
	"strings"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
)

const youtubeScriptSystemPrompt = `You are an expert YouTube script writer who creates viral, engaging content. Focus on:

1. Powerful hooks that stop scrollers
2. Storytelling techniques that maintain retention
3. Clear structure with smooth transitions
4. Audience engagement throughout
5. Strategic CTAs placement
6. Conversational, energetic tone
7. Visual suggestions for editors

Create scripts that maximize watch time, engagement, and subscriber growth.`

const youtubeSEOSystemPrompt = `You are a YouTube SEO expert and viral content creator. Create content that:

🎯 MAXIMIZES click-through rates with irresistible titles
📈 BOOSTS search rankings with strategic keyword placement
🔥 DRIVES engagement with compelling descriptions
✨ USES emojis and formatting for visual appeal
🚀 FOLLOWS YouTube best practices for algorithm optimization

Focus on:
- Emotional triggers in titles
- Strategic keyword density
- Engaging call-to-actions
- Visual formatting with emojis
- Trending terminology
- Audience retention tactics

Make everything feel fresh, exciting, and professional!`

const youtubeSEOTasks = `Generate:

1. **5 VIRAL TITLE OPTIONS** (60 characters max each):
   - Use power words, numbers, and emotional triggers
   - Include trending keywords
   - Make them click-worthy and curiosity-driven
   - Add relevant emojis

2. **OPTIMIZED DESCRIPTION** (2000+ characters):
   - Hook in first 125 characters
   - Detailed video breakdown with timestamps
   - Call-to-actions throughout
   - Relevant hashtags (10-15)
   - Social media links placeholders
   - Subscribe reminder
   - Use emojis strategically

3. **TAGS** (15-20 relevant tags):
   - Mix of broad and specific keywords
   - Include trending terms
   - Long-tail variations

4. **THUMBNAIL IDEAS** (3 concepts):
   - Visual elements suggestions
   - Text overlay ideas
   - Color schemes

Make everything highly engaging, creative, and optimized for YouTube algorithm!`

const youtubeTagsSystemPrompt = `You are a YouTube SEO expert. Your task is to generate a clean, comma-separated list of YouTube tags. The output must be only the tags separated by commas, with no extra text, titles, or formatting.`

const videoIdeasSystemPrompt = `You are a viral content strategist and YouTube algorithm expert. Generate video ideas that:

🎯 MAXIMIZE viral potential through trending formats
📈 BOOST engagement with proven content types
🔥 DRIVE clicks with irresistible titles and concepts
✨ USE current trends and popular formats
🚀 FOLLOW YouTube algorithm preferences

Focus on:
- High-engagement content formats
- Trending topics and challenges
- Clickable titles with emotional triggers
- Diverse content mix for sustained growth
- Audience-specific interests
- Seasonal and timely opportunities
- Cross-platform potential
- Monetization-friendly concepts

Create visually appealing, organized ideas that inspire immediate action!`

const videoIdeasFormats = `Create diverse content types including:

🎬 **VIRAL CONCEPTS** (5 ideas):
- Challenge-based content
- Trending format adaptations
- Controversial/debate topics
- Behind-the-scenes content
- Transformation videos

📚 **EDUCATIONAL CONTENT** (5 ideas):
- How-to tutorials
- Myth-busting videos
- Beginner guides
- Advanced techniques
- Tool/software reviews

🎭 **ENTERTAINMENT FORMATS** (5 ideas):
- Reaction videos
- List/ranking content
- Story-time videos
- Collaboration ideas
- Interactive content

For each idea, provide:
- 🎯 **Catchy Title** (optimized for CTR)
- 📝 **Brief Description** (2-3 sentences)
- 📊 **Estimated Views Potential** (realistic range)
- ⏱️ **Ideal Video Length** (shorts/medium/long)
- 🔥 **Trending Score** (1-10)
- 💡 **Unique Hook** (what makes it special)
- 🎨 **Thumbnail Ideas** (visual concepts)

Format with emojis, clear sections, and engaging presentation that sparks creativity!`

// YouTubeScriptInput 视频脚本
type YouTubeScriptInput struct {
	Topic    string `json:"topic"`
	Style    string `json:"style"`
	Duration string `json:"duration"` // 分钟，如 "5-10"
	Audience string `json:"audience"`
}

func (in *YouTubeScriptInput) Build() (Spec, error) {
	if err := required("topic", in.Topic); err != nil {
		return Spec{}, err
	}

	prompt := lines{
		"Create a compelling YouTube video script for:",
		"",
		"Topic: " + in.Topic,
		"Style: " + orDefault(in.Style, "educational"),
		"Duration: " + orDefault(in.Duration, "5-10") + " minutes",
	}.
		optional("Target Audience", in.Audience).
		add(
			"",
			"Structure the script with:",
			"1. Hook (first 15 seconds)",
			"2. Introduction",
			"3. Main content sections",
			"4. Call-to-action",
			"5. Outro",
			"",
			"Include:",
			"- Engaging opening hook to grab attention",
			"- Clear transitions between sections",
			"- Practical tips and actionable advice",
			"- Engagement prompts (like, subscribe, comment)",
			"- Strong call-to-action",
			"- Visual/editing notes where helpful",
			"",
			"Make it conversational and engaging for YouTube audience.",
		)

	return newSpec(youtubeScriptSystemPrompt, prompt.String(),
		types.WithTemperature(0.8),
		types.WithMaxTokens(2500),
	), nil
}

// YouTubeSEOInput 标题、描述、标签与封面建议
type YouTubeSEOInput struct {
	Topic          string `json:"topic"`
	Niche          string `json:"niche"`
	TargetAudience string `json:"target_audience"`
	VideoType      string `json:"video_type"`
}

func (in *YouTubeSEOInput) Build() (Spec, error) {
	if err := required("topic", in.Topic); err != nil {
		return Spec{}, err
	}

	prompt := lines{
		"Create highly engaging YouTube SEO content for:",
		"",
		"📹 Topic: " + in.Topic,
		"🎯 Niche: " + orDefault(in.Niche, "General"),
		"👥 Target Audience: " + orDefault(in.TargetAudience, "General audience"),
		"📱 Video Type: " + orDefault(in.VideoType, "educational"),
		"",
		youtubeSEOTasks,
	}

	return newSpec(youtubeSEOSystemPrompt, prompt.String(),
		types.WithTemperature(0.8),
		types.WithMaxTokens(3000),
	), nil
}

// YouTubeTagsInput 标签生成，结果需经 SplitTags 处理
type YouTubeTagsInput struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Language string `json:"language"`
}

func (in *YouTubeTagsInput) Build() (Spec, error) {
	if err := required("keyword", in.Keyword); err != nil {
		return Spec{}, err
	}

	prompt := fmt.Sprintf(`Generate a comma-separated list of highly effective YouTube tags for the keyword "%s" in the %s category (%s language). The list should be ready to be copied and pasted directly into the YouTube tags section. Provide a comprehensive list of tags including primary, trending, long-tail, and format-specific tags. Do not include any titles, categories, or any formatting other than the comma-separated tags. For example: tag1, tag2, tag3, tag4, tag5`,
		strings.TrimSpace(in.Keyword),
		orDefault(in.Category, "general"),
		orDefault(in.Language, "en"),
	)

	return newSpec(youtubeTagsSystemPrompt, prompt,
		types.WithTemperature(0.7),
		types.WithMaxTokens(2000),
		types.WithHumanize(true),
	), nil
}

// SplitTags 按逗号拆分标签，去除空白与空项
func SplitTags(text string) []string {
	parts := strings.Split(text, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// VideoIdeasInput 视频选题
type VideoIdeasInput struct {
	Niche    string `json:"niche"`
	Category string `json:"category"`
	Audience string `json:"audience"`
}

func (in *VideoIdeasInput) Build() (Spec, error) {
	if err := required("niche", in.Niche); err != nil {
		return Spec{}, err
	}

	prompt := fmt.Sprintf(`Generate 15 highly engaging, viral-potential video ideas for the "%s" niche in the %s category, targeting %s audience.`,
		strings.TrimSpace(in.Niche),
		orDefault(in.Category, "general"),
		orDefault(in.Audience, "general"),
	) + "\n\n" + videoIdeasFormats

	return newSpec(videoIdeasSystemPrompt, prompt,
		types.WithTemperature(0.8),
		types.WithMaxTokens(3000),
		types.WithHumanize(true),
	), nil
}
