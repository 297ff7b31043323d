package http

import (
	"taskflow-server/internal/chat"
)

// --- Request DTOs ---

type commandReq struct {
	Text   string `json:"text"`
	ToolID string `json:"toolId"`
}

func (r commandReq) toInput() chat.CommandInput {
	return chat.CommandInput{
		Text:   r.Text,
		ToolID: r.ToolID,
	}
}

type saveKeyReq struct {
	ToolID string `json:"toolId" binding:"required"`
	APIKey string `json:"apiKey" binding:"required"`
}

type testKeyReq struct {
	ToolID string `json:"toolId"`
}

// --- Response DTOs ---

type keysResp struct {
	Providers []string `json:"providers"`
}

type okResp struct {
	OK bool `json:"ok"`
}
