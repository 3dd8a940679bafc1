// Package langchain serves chat requests through langchaingo's OpenAI model.
package langchain

import (
	"context"
	"errors"
	"fmt"

	"medical-agents/internal/application/port/output"
	"medical-agents/internal/domain/entity"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

var _ output.LLMPort = (*Adapter)(nil)

const DefaultModel = "gpt-4o"

var ErrMissingAPIKey = errors.New("missing OpenAI API key")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

type Adapter struct {
	model     llms.Model
	modelName string
	logger    output.LoggerPort
}

func NewAdapter(cfg Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}

	model, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain openai model: %w", err)
	}

	return New(model, cfg.Model, cfg.Logger), nil
}

// New wraps an existing langchaingo model.
func New(model llms.Model, modelName string, logger output.LoggerPort) *Adapter {
	return &Adapter{
		model:     model,
		modelName: modelName,
		logger:    logger,
	}
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = a.modelName
	}

	resp, err := a.model.GenerateContent(ctx, convertMessages(req.Messages),
		llms.WithModel(model),
		llms.WithTemperature(float64(req.Temperature)),
	)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := resp.Choices[0]
	if a.logger != nil {
		a.logger.Debug("Content generated", "model", model, "stopReason", choice.StopReason)
	}

	return &output.ChatResponse{
		Message: entity.Message{
			Role:    entity.MessageAssistant,
			Content: choice.Content,
		},
		Usage: usageFrom(choice.GenerationInfo),
	}, nil
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		result = append(result, llms.TextParts(messageType(msg.Role), msg.Content))
	}
	return result
}

func messageType(role entity.MessageRole) llms.ChatMessageType {
	switch role {
	case entity.MessageSystem:
		return llms.ChatMessageTypeSystem
	case entity.MessageAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// usageFrom reads the token counters langchaingo's OpenAI client puts in
// GenerationInfo.
func usageFrom(info map[string]any) output.Usage {
	return output.Usage{
		PromptTokens:     intField(info, "PromptTokens"),
		CompletionTokens: intField(info, "CompletionTokens"),
		TotalTokens:      intField(info, "TotalTokens"),
	}
}

func intField(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
