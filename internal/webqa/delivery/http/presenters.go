package http

import (
	"strings"

	"agent-router/internal/webqa"
)

// --- Request DTOs ---

type searchReq struct {
	UserQuery string `json:"user_query" binding:"required"`
}

func (r searchReq) validate() error {
	if strings.TrimSpace(r.UserQuery) == "" {
		return errQueryRequired
	}
	return nil
}

func (r searchReq) toInput() webqa.SearchInput {
	return webqa.SearchInput{Query: r.UserQuery}
}

// --- Response DTOs ---

type searchResp struct {
	Query    string  `json:"query"`
	Response string  `json:"response"`
	Source   *string `json:"source"`
}

func (h *handler) newSearchResp(out webqa.SearchOutput) searchResp {
	return searchResp{
		Query:    out.Query,
		Response: out.Response,
		Source:   out.Source,
	}
}
