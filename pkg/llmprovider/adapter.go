package llmprovider

import (
	"context"
	"fmt"
	"math"

	"calendar-assistant/pkg/gemini"

	"github.com/sashabaranov/go-openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.ResponseFormat == FormatJSON {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	role := msg.Role
	if role == RoleAssistant {
		role = "model"
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// OpenAIAdapter serves OpenAI and every OpenAI-compatible endpoint
// (DeepSeek, Qwen compatible mode) through go-openai.
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter.
// An empty baseURL keeps the go-openai default.
func NewOpenAIAdapter(name, apiKey, baseURL, model string) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		name:   name,
		model:  model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}

	// go-openai drops a zero temperature from the payload.
	temperature := float32(req.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.ResponseFormat == FormatJSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", a.name, ErrEmptyResponse)
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Choices[0].Message.Content),
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}
