package agent

// Result is the outcome of one execution step. The concrete variants are
// SummaryResult, AnswerResult, WebAnswerResult, DirectResult and
// ErrorResult; each marshals to the JSON payload shown to the model.
type Result interface {
	isResult()
}

type SummaryResult struct {
	Summary  string   `json:"document"`
	Keywords []string `json:"keywords"`
}

type AnswerResult struct {
	Query string `json:"query"`
	Text  string `json:"response"`
}

// WebAnswerResult carries a nil Source when no URL was available.
type WebAnswerResult struct {
	Query  string  `json:"query"`
	Text   string  `json:"response"`
	Source *string `json:"source"`
}

// DirectResult is the model's own reply when it chose no tool.
type DirectResult struct {
	Text string `json:"response"`
}

type ErrorResult struct {
	Message string `json:"error"`
}

func (SummaryResult) isResult()   {}
func (AnswerResult) isResult()    {}
func (WebAnswerResult) isResult() {}
func (DirectResult) isResult()    {}
func (ErrorResult) isResult()     {}
