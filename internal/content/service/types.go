package service

import (
	"github.com/lk2023060901/premio-backend/internal/content/biz"
	"github.com/lk2023060901/premio-backend/internal/content/preset"
)

// ListToolsResponse 工具列表
type ListToolsResponse struct {
	Tools []preset.Tool `json:"tools"`
}

// RunToolResponse 工具执行结果
type RunToolResponse struct {
	Tool      preset.Tool       `json:"tool"`
	Text      string            `json:"text"`
	HTML      string            `json:"html,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Detection *preset.Detection `json:"detection,omitempty"`
}

func toRunToolResponse(result *biz.Result) *RunToolResponse {
	return &RunToolResponse{
		Tool:      result.Tool,
		Text:      result.Text,
		HTML:      result.HTML,
		Tags:      result.Tags,
		Detection: result.Detection,
	}
}
