package llmprovider

import "strings"

// NewTextRequest builds a single-turn request with an optional system prompt.
func NewTextRequest(system, user string) *Request {
	req := &Request{
		Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: user}}}},
	}
	if system != "" {
		req.SystemInstruction = &Message{Role: RoleSystem, Parts: []Part{{Text: system}}}
	}
	return req
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		if p.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// FunctionCalls returns the function calls of the response in order.
func (r *Response) FunctionCalls() []FunctionCall {
	if r == nil {
		return nil
	}
	var calls []FunctionCall
	for _, p := range r.Content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}
