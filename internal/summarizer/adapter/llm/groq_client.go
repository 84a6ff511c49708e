package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"summary-generator/internal/shared/logger"
	"summary-generator/internal/summarizer/config"
	"summary-generator/internal/summarizer/domain/model"
	"summary-generator/internal/summarizer/domain/repository"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the service answers without any choice
var ErrEmptyCompletion = errors.New("text generation returned no choices")

// GroqGenerator talks to Groq's OpenAI-compatible chat completion endpoint
type GroqGenerator struct {
	client *openai.Client
	logger logger.Logger
}

// NewGroqGenerator creates the gateway client. An empty API key is an error.
func NewGroqGenerator(cfg *config.Config, httpClient *http.Client, log logger.Logger) (*GroqGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GROQ_API_KEY environment variable is not set")
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		clientCfg.HTTPClient = httpClient
	}

	return &GroqGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		logger: log.WithComponent("groq_generator"),
	}, nil
}

// Generate sends one non-streaming chat completion and returns the first choice's content
func (g *GroqGenerator) Generate(ctx context.Context, prompt model.Prompt, params model.GenerationParams) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: params.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
		Stream:      false,
	})
	if err != nil {
		g.logger.WithContext(ctx).Errorf("Chat completion failed: %v", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	g.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"model":             resp.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("Chat completion succeeded")

	return resp.Choices[0].Message.Content, nil
}

var _ repository.TextGenerator = (*GroqGenerator)(nil)
