package gemini

type generateRequest struct {
	SystemInstruction *wireContent     `json:"system_instruction,omitempty"`
	Contents          []wireContent    `json:"contents"`
	Tools             []wireToolset    `json:"tools,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text         string    `json:"text,omitempty"`
	FunctionCall *wireCall `json:"functionCall,omitempty"`
}

type wireCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type wireToolset struct {
	FunctionDeclarations []wireDeclaration `json:"functionDeclarations"`
}

type wireDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// Temperature is always sent so that 0 means greedy decoding rather than
// the model default.
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content wireContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func toWire(req *Request) generateRequest {
	out := generateRequest{
		Contents: make([]wireContent, 0, len(req.Messages)),
		GenerationConfig: generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &wireContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, wireContent{Role: wireRole(msg.Role), Parts: toWireParts(msg.Parts)})
	}
	if len(req.Tools) > 0 {
		decls := make([]wireDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, wireDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
		}
		out.Tools = []wireToolset{{FunctionDeclarations: decls}}
	}
	return out
}

func toWireParts(parts []Part) []wirePart {
	out := make([]wirePart, 0, len(parts))
	for _, p := range parts {
		wp := wirePart{Text: p.Text}
		if p.FunctionCall != nil {
			wp.FunctionCall = &wireCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		out = append(out, wp)
	}
	return out
}

func fromWire(resp *generateResponse) *Response {
	out := &Response{Usage: &Usage{
		InputTokens:  resp.UsageMetadata.PromptTokenCount,
		OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
		TotalTokens:  resp.UsageMetadata.TotalTokenCount,
	}}
	if len(resp.Candidates) == 0 {
		return out
	}

	content := resp.Candidates[0].Content
	out.Content.Role = content.Role
	for _, wp := range content.Parts {
		p := Part{Text: wp.Text}
		if wp.FunctionCall != nil {
			p.FunctionCall = &FunctionCall{Name: wp.FunctionCall.Name, Args: wp.FunctionCall.Args}
		}
		out.Content.Parts = append(out.Content.Parts, p)
	}
	return out
}

// wireRole maps to the two roles Gemini accepts in contents.
func wireRole(role string) string {
	if role == "assistant" || role == "model" {
		return "model"
	}
	return "user"
}
