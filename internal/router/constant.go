package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Router prompts
const (
	PromptRouterSystem = `You are an orchestrator agent. Your primary role is to answer the user by analyzing the user's request and determining the most appropriate specialized tool to use.
You have access to the following tools: %s.
When a tool is selected, you must call it with the correct arguments.
If the user's request can be answered by one of the tools, you must use that tool.
If no tool is suitable, respond directly to the user indicating you cannot fulfill the request.`
)

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed"
)
