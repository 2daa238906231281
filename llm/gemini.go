package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// defaultGeminiModel is the model used when no override is provided.
const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's GenAI SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiProvider satisfies the Provider interface.
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a client for the Gemini API. It returns an
// error if no API key is available (neither via option nor GEMINI_API_KEY).
func NewGeminiProvider(opts ...Option) (*GeminiProvider, error) {
	cfg := newClientConfig(defaultGeminiModel, opts)

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(ServiceGemini.EnvVar())
	}
	if apiKey == "" {
		return nil, errors.New("llm: GEMINI_API_KEY not set and no API key provided")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.baseURL}
	}

	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("llm: creating gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.model,
	}, nil
}

// Complete sends a single-turn generateContent request to the Gemini API.
func (p *GeminiProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		config.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: completion failed: %w", err)
	}

	out := &Response{
		Content: resp.Text(),
		Model:   model,
	}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return out, nil
}

// Model returns the default model configured for this client.
func (p *GeminiProvider) Model() string {
	return p.model
}
