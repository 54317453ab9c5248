package http

import (
	"strings"

	"agent-router/internal/docqa"
)

// --- Request DTOs ---

type respondReq struct {
	UserQuery     string   `json:"user_query"     binding:"required"`
	DocumentsList []string `json:"documents_list" binding:"required"`
}

func (r respondReq) validate() error {
	if strings.TrimSpace(r.UserQuery) == "" {
		return errQueryRequired
	}
	return nil
}

func (r respondReq) toInput() docqa.AnswerInput {
	return docqa.AnswerInput{
		Query:     r.UserQuery,
		Documents: r.DocumentsList,
	}
}

// --- Response DTOs ---

type respondResp struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

func (h *handler) newRespondResp(out docqa.AnswerOutput) respondResp {
	return respondResp{
		Query:    out.Query,
		Response: out.Response,
	}
}
