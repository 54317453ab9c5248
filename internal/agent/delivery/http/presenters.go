package http

import (
	"strings"

	"agent-router/internal/agent/orchestrator"
)

// --- Request DTOs ---

type processReq struct {
	UserPrompt string `json:"user_prompt" binding:"required"`
}

func (r processReq) validate() error {
	if strings.TrimSpace(r.UserPrompt) == "" {
		return errPromptRequired
	}
	return nil
}

// --- Response DTOs ---

type processResp struct {
	Query         string `json:"query"`
	Response      string `json:"response"`
	Justification string `json:"justification"`
}

func (h *handler) newProcessResp(out orchestrator.Output) processResp {
	return processResp{
		Query:         out.Query,
		Response:      out.Response,
		Justification: out.Justification,
	}
}
