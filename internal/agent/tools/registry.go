package tools

import (
	"agent-router/internal/agent"
	"agent-router/internal/docqa"
	"agent-router/internal/summary"
	"agent-router/internal/webqa"
)

// NewRegistry builds the fixed capability set exposed to the router.
func NewRegistry(summaryUC summary.UseCase, docqaUC docqa.UseCase, webqaUC webqa.UseCase) *agent.Registry {
	return agent.NewRegistry(
		NewSummarizeDocumentTool(summaryUC),
		NewAnswerFromDocumentsTool(docqaUC),
		NewSearchInternetTool(webqaUC),
	)
}
