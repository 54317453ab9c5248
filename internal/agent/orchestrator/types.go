package orchestrator

import "agent-router/internal/agent"

// Output is the orchestration result for one query.
type Output struct {
	Query         string
	Response      string
	Justification string

	// Selection and Outcome are kept for logs and metrics.
	Selection agent.Selection
	Outcome   string
}
