package preset

import (
	"strings"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/tidwall/gjson"
)

const aiDetectorSystemPrompt = `You are an expert AI content detector. Analyze the given text and determine whether it was written by AI or humans. Return your analysis in the following JSON format:

{
  "aiScore": [percentage 0-100],
  "humanScore": [percentage 0-100],
  "confidence": [confidence level 0-100],
  "analysis": "[detailed explanation of your reasoning]"
}

Consider factors like:
- Writing patterns and flow
- Vocabulary choices and repetition
- Sentence structure variety
- Natural imperfections vs AI patterns
- Context and creativity level

Be precise and analytical in your assessment.`

// AIDetectorInput 待检测文本，结果需经 ParseDetection 处理
type AIDetectorInput struct {
	Text string `json:"text"`
}

func (in *AIDetectorInput) Build() (Spec, error) {
	if err := required("text", in.Text); err != nil {
		return Spec{}, err
	}

	prompt := "Analyze this content for AI vs Human authorship:\n\n\"" + in.Text + "\""

	return newSpec(aiDetectorSystemPrompt, prompt,
		types.WithTemperature(0.3),
		types.WithMaxTokens(1000),
	), nil
}

// Detection AI 检测结果，分数为 0-100
type Detection struct {
	AIScore    float64 `json:"ai_score"`
	HumanScore float64 `json:"human_score"`
	Confidence float64 `json:"confidence"`
	Analysis   string  `json:"analysis"`
}

// ParseDetection 从模型输出中提取 JSON 结果
// 取第一个 '{' 到最后一个 '}' 之间的内容，允许前后夹杂说明文字
func ParseDetection(text string) (*Detection, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, ErrInvalidDetection
	}

	raw := text[start : end+1]
	if !gjson.Valid(raw) {
		return nil, ErrInvalidDetection
	}

	result := gjson.Parse(raw)
	if !result.IsObject() {
		return nil, ErrInvalidDetection
	}

	return &Detection{
		AIScore:    result.Get("aiScore").Float(),
		HumanScore: result.Get("humanScore").Float(),
		Confidence: result.Get("confidence").Float(),
		Analysis:   result.Get("analysis").String(),
	}, nil
}
