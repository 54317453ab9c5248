package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"agent-router/internal/agent"
	"agent-router/internal/agent/answer"
	"agent-router/internal/router"
	"agent-router/pkg/llmprovider"
	"agent-router/pkg/metrics"
)

// Process runs Route → Execute → Finalize once, with no loop back.
func (o *Orchestrator) Process(ctx context.Context, query string) (Output, error) {
	decision, err := o.router.Route(ctx, query)
	if err != nil {
		o.l.Errorf(ctx, "%s: router.Route: %v", LogPrefixProcess, err)
		return Output{}, fmt.Errorf("route: %w", err)
	}

	selection, result := o.execute(ctx, decision)
	metrics.RecordToolSelection(selection.String())

	out := o.finalize(ctx, query, selection, result)
	metrics.RecordFinalizeOutcome(out.Outcome)

	o.l.Info(ctx, LogPrefixProcess+": query processed",
		"selection", selection.String(),
		"outcome", out.Outcome,
	)
	return out, nil
}

// execute invokes the selected capability. Failures become an ErrorResult
// so the Finalize stage can still explain them to the user.
func (o *Orchestrator) execute(ctx context.Context, d router.Decision) (agent.Selection, agent.Result) {
	if d.Direct() {
		return agent.SelectDirectResponse, agent.DirectResult{Text: d.Text}
	}

	capability, ok := o.registry.Get(d.ToolName)
	if !ok {
		o.l.Warnf(ctx, "%s: tool %q not found", LogPrefixExecute, d.ToolName)
		return agent.SelectErrorFallback, agent.ErrorResult{Message: fmt.Sprintf(ErrMsgToolNotFound, d.ToolName)}
	}

	selection := capability.Selection()
	o.l.Info(ctx, append([]any{LogPrefixExecute + ": invoking tool", "tool", selection.String()}, argSizes(d.Args)...)...)

	result, err := capability.Invoke(ctx, d.Args)
	if err != nil {
		o.l.Errorf(ctx, "%s: tool %s failed: %v", LogPrefixExecute, selection, err)
		return selection, agent.ErrorResult{Message: fmt.Sprintf(ErrMsgToolExecution, selection, err)}
	}
	return selection, result
}

func (o *Orchestrator) finalize(ctx context.Context, query string, selection agent.Selection, result agent.Result) Output {
	out := Output{Query: query, Selection: selection}

	payload, err := json.Marshal(result)
	if err != nil {
		// Result variants only hold strings and string slices.
		payload = []byte(`{}`)
		o.l.Errorf(ctx, "%s: json.Marshal: %v", LogPrefixFinalize, err)
	}

	req := llmprovider.NewTextRequest("", fmt.Sprintf(PromptFinalize, query, selection, payload, selection))
	req.Temperature = o.temperature

	resp, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		o.l.Errorf(ctx, "%s: llm.GenerateContent: %v", LogPrefixFinalize, err)
		out.Response = fmt.Sprintf(FinalizeErrorResponse, err)
		out.Justification = FinalizeErrorJustification
		out.Outcome = OutcomeGenerationError
		return out
	}

	parsed := answer.Parse(strings.TrimSpace(resp.Text()))
	if parsed.Outcome != answer.OutcomeComplete {
		o.l.Warnf(ctx, "%s: reply format %s", LogPrefixFinalize, parsed.Outcome)
	}

	out.Response = parsed.Answer
	out.Justification = parsed.Justification
	out.Outcome = parsed.Outcome.String()
	return out
}

// argSizes returns key/value log fields with the size of each argument:
// the length of strings and the element count of lists.
func argSizes(args map[string]interface{}) []any {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		size := 0
		switch v := args[k].(type) {
		case string:
			size = len(v)
		case []interface{}:
			size = len(v)
		case []string:
			size = len(v)
		}
		fields = append(fields, k+"_size", size)
	}
	return fields
}
