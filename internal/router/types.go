package router

import "agent-router/internal/agent"

// Decision is the outcome of the Route stage.
type Decision struct {
	// Selection is SelectDirectResponse when the model answered without a
	// function call. A tool name outside the fixed set is kept verbatim in
	// ToolName and leaves Selection empty.
	Selection agent.Selection
	ToolName  string
	Args      map[string]interface{}

	// Text is the model's direct reply, set only for SelectDirectResponse.
	Text string
}

// Direct reports whether the model answered without selecting a tool.
func (d Decision) Direct() bool {
	return d.Selection == agent.SelectDirectResponse
}
