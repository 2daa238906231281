package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// defaultOpenAIModel is the model used when no override is provided.
const defaultOpenAIModel = "gpt-4o"

// OpenAIProvider implements Provider using the official OpenAI SDK.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// Compile-time check that OpenAIProvider satisfies the Provider interface.
var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a client for the OpenAI chat-completions API.
// It returns an error if no API key is available (neither via option nor
// OPENAI_API_KEY).
func NewOpenAIProvider(opts ...Option) (*OpenAIProvider, error) {
	cfg := newClientConfig(defaultOpenAIModel, opts)

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(ServiceChatGPT.EnvVar())
	}
	if apiKey == "" {
		return nil, errors.New("llm: OPENAI_API_KEY not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(clientOpts...),
		model:  cfg.model,
	}, nil
}

// Complete sends a single-turn chat completion request to the OpenAI API.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	chat, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: completion failed: %w", err)
	}

	var content string
	if len(chat.Choices) > 0 {
		content = chat.Choices[0].Message.Content
	}

	return &Response{
		Content: content,
		Model:   chat.Model,
		Usage: Usage{
			InputTokens:  int(chat.Usage.PromptTokens),
			OutputTokens: int(chat.Usage.CompletionTokens),
		},
	}, nil
}

// Model returns the default model configured for this client.
func (p *OpenAIProvider) Model() string {
	return p.model
}
