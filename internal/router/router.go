package router

import (
	"context"
	"fmt"
	"strings"

	"agent-router/internal/agent"
	"agent-router/pkg/llmprovider"
)

// Route sends the query with the tool catalogue bound and returns the
// model's choice. Only the first function call of the reply is used.
func (r *ToolRouter) Route(ctx context.Context, query string) (Decision, error) {
	tools := r.registry.ToFunctionDefinitions()

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}

	req := llmprovider.NewTextRequest(fmt.Sprintf(PromptRouterSystem, strings.Join(names, ", ")), query)
	req.Tools = tools
	req.Temperature = r.temperature

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", LogPrefixRoute, ErrMsgLLMCallFailed, err)
		return Decision{}, fmt.Errorf("%s: %w", ErrMsgLLMCallFailed, err)
	}

	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		r.l.Infof(ctx, "%s: model responded directly", LogPrefixRoute)
		return Decision{
			Selection: agent.SelectDirectResponse,
			Text:      resp.Text(),
		}, nil
	}

	call := calls[0]
	if len(calls) > 1 {
		r.l.Warnf(ctx, "%s: model requested %d tools, using %s", LogPrefixRoute, len(calls), call.Name)
	}

	args := call.Args
	if args == nil {
		args = map[string]interface{}{}
	}

	decision := Decision{ToolName: call.Name, Args: args}
	if sel, ok := agent.ParseTool(call.Name); ok {
		decision.Selection = sel
	}

	r.l.Infof(ctx, "%s: selected tool %s", LogPrefixRoute, call.Name)
	return decision, nil
}
