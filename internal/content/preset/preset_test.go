package preset

import (
	"strings"
	"testing"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSEOContent(t *testing.T) {
	spec := SEOContent("write about go")

	assert.Equal(t, "write about go", spec.Prompt)
	assert.Contains(t, spec.SystemPrompt, "expert SEO content writer")
	assert.Equal(t, types.DefaultModel, spec.Options.Model)
	assert.Equal(t, 0.7, spec.Options.Temperature)
	assert.Equal(t, 3000, spec.Options.MaxTokens)
	assert.True(t, spec.Options.Humanize)
}

func TestHumanize(t *testing.T) {
	spec := Humanize("Some robotic text.")

	assert.Equal(t, "Please humanize this content to make it sound more natural and engaging:\n\nSome robotic text.", spec.Prompt)
	assert.Contains(t, spec.SystemPrompt, "expert content editor")
	assert.Equal(t, 0.8, spec.Options.Temperature)
	assert.Equal(t, 3000, spec.Options.MaxTokens)
	assert.False(t, spec.Options.Humanize)
}

func TestKeywords(t *testing.T) {
	spec := Keywords("coffee beans")

	assert.Contains(t, spec.Prompt, `"coffee beans"`)
	assert.Contains(t, spec.SystemPrompt, "one keyword per line")
	assert.Equal(t, 0.6, spec.Options.Temperature)
	assert.Equal(t, 1500, spec.Options.MaxTokens)
	assert.True(t, spec.Options.Humanize)
}

func TestPresetsArePure(t *testing.T) {
	assert.Equal(t, SEOContent("x"), SEOContent("x"))
	assert.Equal(t, Humanize("x"), Humanize("x"))
	assert.Equal(t, Keywords("x"), Keywords("x"))
}

func TestNewInput(t *testing.T) {
	for _, tool := range Tools() {
		in, err := NewInput(tool)
		require.NoError(t, err, tool)
		require.NotNil(t, in, tool)

		_, err = in.Build()
		assert.ErrorIs(t, err, ErrFieldRequired, tool)
	}

	_, err := NewInput("does-not-exist")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestBuild_Parameters(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		temperature float64
		maxTokens   int
		humanize    bool
		contains    []string
	}{
		{
			name:        "seo article",
			input:       &SEOArticleInput{Topic: "Go generics"},
			temperature: 0.7,
			maxTokens:   3000,
			humanize:    true,
			contains:    []string{`"Go generics"`, "- Tone: professional", "- Target word count: 1000 words"},
		},
		{
			name:        "meta tags",
			input:       &MetaTagsInput{PageTitle: "Home", Keywords: "go, backend"},
			temperature: 0.3,
			maxTokens:   1500,
			contains:    []string{"Page Title: Home", "Keywords: go, backend"},
		},
		{
			name:        "email outreach",
			input:       &EmailOutreachInput{Purpose: "partnership", Company: "Acme"},
			temperature: 0.7,
			maxTokens:   1000,
			contains:    []string{"high-converting cold outreach email", "Company: Acme", "Purpose: partnership"},
		},
		{
			name:        "youtube script",
			input:       &YouTubeScriptInput{Topic: "sourdough", Duration: "10-15"},
			temperature: 0.8,
			maxTokens:   2500,
			contains:    []string{"Topic: sourdough", "Style: educational", "Duration: 10-15 minutes"},
		},
		{
			name:        "youtube seo",
			input:       &YouTubeSEOInput{Topic: "home espresso"},
			temperature: 0.8,
			maxTokens:   3000,
			contains:    []string{"📹 Topic: home espresso", "🎯 Niche: General", "👥 Target Audience: General audience"},
		},
		{
			name:        "youtube tags",
			input:       &YouTubeTagsInput{Keyword: "vlog"},
			temperature: 0.7,
			maxTokens:   2000,
			humanize:    true,
			contains:    []string{`keyword "vlog" in the general category (en language)`},
		},
		{
			name:        "video ideas",
			input:       &VideoIdeasInput{Niche: "fitness"},
			temperature: 0.8,
			maxTokens:   3000,
			humanize:    true,
			contains:    []string{`"fitness" niche in the general category, targeting general audience`, "VIRAL CONCEPTS"},
		},
		{
			name:        "prompt generator",
			input:       &PromptGeneratorInput{Category: "social_media_posts", Objective: "launch teaser"},
			temperature: 0.7,
			maxTokens:   2000,
			contains:    []string{"AI prompts for social media_posts", "Objective: launch teaser"},
		},
		{
			name:        "ai detector",
			input:       &AIDetectorInput{Text: "hello there"},
			temperature: 0.3,
			maxTokens:   1000,
			contains:    []string{"Analyze this content for AI vs Human authorship:\n\n\"hello there\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.input.Build()
			require.NoError(t, err)

			assert.NotEmpty(t, spec.SystemPrompt)
			assert.Equal(t, types.DefaultModel, spec.Options.Model)
			assert.Equal(t, tt.temperature, spec.Options.Temperature)
			assert.Equal(t, tt.maxTokens, spec.Options.MaxTokens)
			assert.Equal(t, tt.humanize, spec.Options.Humanize)
			for _, s := range tt.contains {
				assert.Contains(t, spec.Prompt, s)
			}
		})
	}
}

func TestBuild_OmitsEmptyOptionalLines(t *testing.T) {
	spec, err := (&MetaTagsInput{PageTitle: "Home"}).Build()
	require.NoError(t, err)
	assert.NotContains(t, spec.Prompt, "Page Description")
	assert.NotContains(t, spec.Prompt, "Keywords:")

	spec, err = (&EmailOutreachInput{Purpose: "intro", RecipientName: "  "}).Build()
	require.NoError(t, err)
	assert.NotContains(t, spec.Prompt, "Recipient Name")
	assert.NotContains(t, spec.Prompt, "Additional Context")
	assert.False(t, strings.Contains(spec.Prompt, "\n\n\n"))
}

func TestBuild_RequiredFieldIsWhitespace(t *testing.T) {
	_, err := (&SEOArticleInput{Topic: "   "}).Build()
	assert.ErrorIs(t, err, ErrFieldRequired)
	assert.Contains(t, err.Error(), "topic")
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"go, golang ,  backend", []string{"go", "golang", "backend"}},
		{"a,,b, ,c,", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{"", []string{}},
		{" , , ", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitTags(tt.in), tt.in)
	}
}

func TestParseDetection(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		d, err := ParseDetection(`{"aiScore": 85, "humanScore": 15, "confidence": 90, "analysis": "Uniform sentences."}`)
		require.NoError(t, err)
		assert.Equal(t, 85.0, d.AIScore)
		assert.Equal(t, 15.0, d.HumanScore)
		assert.Equal(t, 90.0, d.Confidence)
		assert.Equal(t, "Uniform sentences.", d.Analysis)
	})

	t.Run("wrapped in prose and fences", func(t *testing.T) {
		text := "Here is my analysis:\n```json\n{\n  \"aiScore\": 30,\n  \"humanScore\": 70,\n  \"confidence\": 65,\n  \"analysis\": \"Varied {tone}.\"\n}\n```\nHope this helps."
		d, err := ParseDetection(text)
		require.NoError(t, err)
		assert.Equal(t, 30.0, d.AIScore)
		assert.Equal(t, "Varied {tone}.", d.Analysis)
	})

	t.Run("missing fields default to zero", func(t *testing.T) {
		d, err := ParseDetection(`{"analysis":"short"}`)
		require.NoError(t, err)
		assert.Zero(t, d.AIScore)
		assert.Equal(t, "short", d.Analysis)
	})

	for _, text := range []string{"no json here", "{not json}", "} reversed {", ""} {
		_, err := ParseDetection(text)
		assert.ErrorIs(t, err, ErrInvalidDetection, text)
	}
}
