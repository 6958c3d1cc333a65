package preset

import (
	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
)

const emailOutreachSystemPrompt = `You are an expert email marketing specialist and conversion copywriter who writes high-converting outreach emails. Focus on:

1. Personalization that builds rapport
2. Clear value proposition in the first few lines
3. Social proof or credibility indicators
4. Specific, actionable CTAs
5. Professional yet conversational tone
6. Brevity - respect the recipient's time
7. Psychological triggers that drive responses
8. Visual appeal with strategic formatting
9. Emotional engagement techniques
10. Strategic emoji usage for modern appeal

Create emails that feel personal, visually appealing, and conversion-focused while maintaining professionalism.`

const promptGeneratorSystemPrompt = `You are an expert prompt engineer who creates highly effective AI prompts. Apply these principles:

1. Clarity and Specificity - Be precise about what you want
2. Context Setting - Provide relevant background information
3. Role Assignment - Give the AI a specific role or persona
4. Output Format - Specify desired structure and format
5. Examples - Include examples when they improve results
6. Constraints - Set appropriate limitations and boundaries
7. Chain of Thought - Use step-by-step reasoning when needed

Create prompts that consistently produce high-quality, relevant outputs.`

// EmailOutreachInput 外联邮件
type EmailOutreachInput struct {
	EmailType     string `json:"email_type"` // cold_outreach、follow_up 等
	RecipientName string `json:"recipient_name"`
	Company       string `json:"company"`
	Purpose       string `json:"purpose"`
	Context       string `json:"context"`
}

func (in *EmailOutreachInput) Build() (Spec, error) {
	if err := required("purpose", in.Purpose); err != nil {
		return Spec{}, err
	}

	prompt := lines{
		"Create a high-converting " + humanLabel(orDefault(in.EmailType, "cold_outreach")) + " email with the following details:",
		"",
	}.
		optional("Recipient Name", in.RecipientName).
		optional("Company", in.Company).
		add("Purpose: " + in.Purpose).
		optional("Additional Context", in.Context).
		add(
			"",
			"Requirements:",
			"- 🎯 Compelling subject line with emotional hook",
			"- 👋 Personalized opening that builds rapport",
			"- 💎 Clear value proposition in first 2 lines",
			"- 🚀 Specific call-to-action that drives action",
			"- 💬 Professional but conversational tone",
			"- ⏱️ Keep it concise (under 150 words)",
			"- 📈 High conversion focus with psychological triggers",
			"- ✨ Strategic use of emojis for visual appeal",
			"- 🎨 Professional formatting with line breaks",
			"",
			"Format: Provide both subject line and email body with clear visual structure and engaging elements.",
		)

	return newSpec(emailOutreachSystemPrompt, prompt.String(),
		types.WithTemperature(0.7),
		types.WithMaxTokens(1000),
	), nil
}

// PromptGeneratorInput 提示词生成
type PromptGeneratorInput struct {
	Category  string `json:"category"` // content_writing 等
	Objective string `json:"objective"`
	Context   string `json:"context"`
}

func (in *PromptGeneratorInput) Build() (Spec, error) {
	if err := required("objective", in.Objective); err != nil {
		return Spec{}, err
	}

	prompt := lines{
		"Create highly effective AI prompts for " + humanLabel(orDefault(in.Category, "content_writing")) + " with the following requirements:",
		"",
		"Objective: " + in.Objective,
	}.
		optional("Context", in.Context).
		add(
			"",
			"Generate 3-5 different prompt variations that are:",
			"- Specific and clear in instructions",
			"- Include relevant context and constraints",
			"- Optimize for the desired output quality",
			"- Include examples or format specifications when helpful",
			"- Use effective prompt engineering techniques",
			"",
			"For each prompt, briefly explain why it would be effective.",
		)

	return newSpec(promptGeneratorSystemPrompt, prompt.String(),
		types.WithTemperature(0.7),
		types.WithMaxTokens(2000),
	), nil
}
