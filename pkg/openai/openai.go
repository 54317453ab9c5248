package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

type openAIImpl struct {
	client *goopenai.Client
	model  string
}

func newOpenAIImpl(cfg Config) *openAIImpl {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = cfg.HTTPClient

	return &openAIImpl{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// GenerateContent sends a chat completion request.
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := o.client.CreateChatCompletion(ctx, o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion failed: %w", err)
	}
	return transformResponse(resp), nil
}

// Model returns the model being used.
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) transformRequest(req *Request) goopenai.ChatCompletionRequest {
	temperature := float32(req.Temperature)
	if temperature == 0 {
		// go-openai omits a zero temperature, which makes the server use its own default.
		temperature = math.SmallestNonzeroFloat32
	}

	chatReq := goopenai.ChatCompletionRequest{
		Model:               o.model,
		Temperature:         temperature,
		MaxCompletionTokens: req.MaxTokens,
		Messages:            make([]goopenai.ChatCompletionMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = goopenai.ChatMessageRoleSystem
		chatReq.Messages = append(chatReq.Messages, systemMsg)
	}

	for i := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, transformMessage(&req.Messages[i]))
	}

	if len(req.Tools) > 0 {
		chatReq.Tools = make([]goopenai.Tool, len(req.Tools))
		for i, tool := range req.Tools {
			chatReq.Tools[i] = goopenai.Tool{
				Type: goopenai.ToolTypeFunction,
				Function: &goopenai.FunctionDefinition{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
	}

	return chatReq
}

func transformMessage(msg *Content) goopenai.ChatCompletionMessage {
	chatMsg := goopenai.ChatCompletionMessage{Role: chatRole(msg.Role)}

	var text []string
	for _, part := range msg.Parts {
		if part.Text != "" {
			text = append(text, part.Text)
		}
		if fc := part.FunctionCall; fc != nil {
			argsJSON, _ := json.Marshal(fc.Args)
			chatMsg.ToolCalls = append(chatMsg.ToolCalls, goopenai.ToolCall{
				ID:       callID(fc.ID, fc.Name),
				Type:     goopenai.ToolTypeFunction,
				Function: goopenai.FunctionCall{Name: fc.Name, Arguments: string(argsJSON)},
			})
		}
	}
	chatMsg.Content = strings.Join(text, "\n")

	return chatMsg
}

func transformResponse(resp goopenai.ChatCompletionResponse) *Response {
	out := &Response{
		Content: Content{Role: goopenai.ChatMessageRoleAssistant},
		Model:   resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	message := resp.Choices[0].Message
	if message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: message.Content})
	}

	for _, toolCall := range message.ToolCalls {
		if toolCall.Type != goopenai.ToolTypeFunction {
			continue
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   toolCall.ID,
				Name: toolCall.Function.Name,
				Args: decodeArgs(toolCall.Function.Arguments),
			},
		})
	}

	return out
}

func chatRole(role string) string {
	switch role {
	case "model", "assistant":
		return goopenai.ChatMessageRoleAssistant
	case "system":
		return goopenai.ChatMessageRoleSystem
	default:
		return goopenai.ChatMessageRoleUser
	}
}

// decodeArgs tolerates malformed argument JSON from the model; the caller
// validates required arguments itself.
func decodeArgs(raw string) map[string]any {
	args := map[string]any{}
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{}
	}
	return args
}

func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}
