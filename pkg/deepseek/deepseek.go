package deepseek

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type deepseekImpl struct {
	model string
	chat  llms.Model
	// jsonChat forces response_format json_object on every call.
	jsonChat llms.Model
}

func newDeepSeekImpl(cfg Config) (*deepseekImpl, error) {
	base := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(cfg.HTTPClient),
	}

	chat, err := openai.New(base...)
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to create client: %w", err)
	}

	jsonOpts := append(append([]openai.Option{}, base...), openai.WithResponseFormat(&openai.ResponseFormat{
		Type: "json_object",
	}))
	jsonChat, err := openai.New(jsonOpts...)
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to create json client: %w", err)
	}

	return &deepseekImpl{
		model:    cfg.Model,
		chat:     chat,
		jsonChat: jsonChat,
	}, nil
}

// GenerateContent sends a chat completion request to DeepSeek
func (d *deepseekImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.SystemInstruction)},
		})
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(m.Content)},
		})
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	model := d.chat
	if req.JSONMode {
		model = d.jsonChat
	}

	resp, err := model.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		return nil, fmt.Errorf("deepseek: generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}, nil
	}

	choice := resp.Choices[0]
	return &Response{
		Text:       choice.Content,
		StopReason: choice.StopReason,
		Usage:      usageFromInfo(choice.GenerationInfo),
	}, nil
}

// Model returns the model being used
func (d *deepseekImpl) Model() string {
	return d.model
}

func usageFromInfo(info map[string]any) *Usage {
	u := &Usage{}
	if v, ok := info["PromptTokens"].(int); ok {
		u.InputTokens = v
	}
	if v, ok := info["CompletionTokens"].(int); ok {
		u.OutputTokens = v
	}
	if v, ok := info["TotalTokens"].(int); ok {
		u.TotalTokens = v
	}
	return u
}
