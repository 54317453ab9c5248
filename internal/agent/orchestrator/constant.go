package orchestrator

// Log prefixes
const (
	LogPrefixProcess  = "internal.agent.orchestrator.Process"
	LogPrefixExecute  = "internal.agent.orchestrator.execute"
	LogPrefixFinalize = "internal.agent.orchestrator.finalize"
)

// Finalize prompt. Arguments: user query, selection, payload JSON, selection.
const (
	PromptFinalize = `You are a helpful AI assistant and a manager of specialized agents.
You have just processed a user's request.
Your task is to:
1. Convert the raw JSON output (or direct response) into a natural, user-friendly answer. Ensure ALL information from the raw output is included in the natural language answer without omitting anything.
2. If the JSON output contains any links or URLs, ensure they are included in the final answer.
3. For summarization tool output start with the summary of the given document and then mention the keywords in the final answer.
4. Provide a clear and concise justification for why the specific tool was chosen to address the user's original query. This justification MUST be a single line.
   If no tool was chosen (i.e. 'direct_response'), explain why a direct response was provided in a single line.

Original User Query: %s
Tool Used: %s
Raw Tool Output/Direct Response (JSON): %s

Based on the above, provide your response in the following format:

**Answer:**
[Natural language answer derived from the tool output. Keep everything from the output except the user query, using line breaks where they help. If the output indicates an error or no results, clearly state that. For 'direct_response', provide the direct answer here.]

**Justification for Tool Selection:**
[Single-line explanation of why the '%s' tool was chosen for the original query. For 'direct_response', explain why a direct response was given.]`
)

// Error payload messages
const (
	ErrMsgToolNotFound  = "Tool '%s' not found."
	ErrMsgToolExecution = "Error executing tool '%s': %v"
)

// Finalize fallbacks
const (
	FinalizeErrorResponse      = "An error occurred while generating the final response: %v"
	FinalizeErrorJustification = "Could not determine justification due to an error."
	OutcomeGenerationError     = "generation_error"
)
