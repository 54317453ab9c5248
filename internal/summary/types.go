package summary

// --- UseCase Inputs ---

type SummarizeInput struct {
	Document string
}

// --- UseCase Outputs ---

// SummarizeOutput holds the summary and the keywords extracted from the
// same document. Keywords are never empty strings and may repeat.
type SummarizeOutput struct {
	Summary  string
	Keywords []string
}
