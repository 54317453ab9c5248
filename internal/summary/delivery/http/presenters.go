package http

import (
	"strings"

	"agent-router/internal/summary"
)

// --- Request DTOs ---

type summarizeReq struct {
	DocumentContent string `json:"document_content" binding:"required"`
}

func (r summarizeReq) validate() error {
	if strings.TrimSpace(r.DocumentContent) == "" {
		return errDocumentRequired
	}
	return nil
}

func (r summarizeReq) toInput() summary.SummarizeInput {
	return summary.SummarizeInput{Document: r.DocumentContent}
}

// --- Response DTOs ---

type summarizeResp struct {
	Document string   `json:"document"`
	Keywords []string `json:"keywords"`
}

func (h *handler) newSummarizeResp(out summary.SummarizeOutput) summarizeResp {
	keywords := out.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return summarizeResp{
		Document: out.Summary,
		Keywords: keywords,
	}
}
