package docqa

// --- UseCase Inputs ---

// AnswerInput is a question and the documents it must be answered from,
// in the order they are presented to the model.
type AnswerInput struct {
	Query     string
	Documents []string
}

// --- UseCase Outputs ---

type AnswerOutput struct {
	Query    string
	Response string
}
