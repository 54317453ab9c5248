package test

// RouteRequest represents a dry-run routing request
type RouteRequest struct {
	UserPrompt string `json:"user_prompt" binding:"required"`
}

// RouteResponse represents the routing decision without tool execution
type RouteResponse struct {
	Success   bool                   `json:"success"`
	Selection string                 `json:"selection,omitempty"`
	ToolName  string                 `json:"tool_name,omitempty"`
	Known     bool                   `json:"known"`
	Args      map[string]interface{} `json:"args,omitempty"`
	Text      string                 `json:"text,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Details   string                 `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
