// Package llm provides a service-agnostic LLM client interface with
// implementations backed by the hosted Anthropic, Google Gemini, and
// OpenAI chat-completion APIs.
package llm

import (
	"context"
	"fmt"
)

// Service identifies one of the supported hosted LLM backends.
type Service string

// Supported services. The string values are part of the external contract
// and must not be renamed.
const (
	ServiceClaude  Service = "claude"
	ServiceGemini  Service = "gemini"
	ServiceChatGPT Service = "chatgpt"
)

// Services returns every supported service in a fixed order.
func Services() []Service {
	return []Service{ServiceClaude, ServiceGemini, ServiceChatGPT}
}

// Valid reports whether s names a supported service.
func (s Service) Valid() bool {
	switch s {
	case ServiceClaude, ServiceGemini, ServiceChatGPT:
		return true
	}
	return false
}

// EnvVar returns the environment variable holding the API key for s, or an
// empty string for an unknown service.
func (s Service) EnvVar() string {
	switch s {
	case ServiceClaude:
		return "ANTHROPIC_API_KEY"
	case ServiceGemini:
		return "GEMINI_API_KEY"
	case ServiceChatGPT:
		return "OPENAI_API_KEY"
	}
	return ""
}

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the LLM and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// Model overrides the client's default model. If empty, the client
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the client uses its
	// own default.
	MaxTokens int

	// Temperature controls randomness. If nil, the service default applies.
	Temperature *float64

	// SystemPrompt sets the system instruction for the completion.
	SystemPrompt string
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that served the request.
	Model string

	// Usage reports token consumption where the service provides it.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// New constructs the client for the given service, configured to use the
// requested model by default. The API key is read from the service's
// environment variable unless WithAPIKey is supplied.
func New(service Service, model string, opts ...Option) (Provider, error) {
	if model != "" {
		opts = append([]Option{WithModel(model)}, opts...)
	}
	switch service {
	case ServiceClaude:
		return NewAnthropicProvider(opts...)
	case ServiceGemini:
		return NewGeminiProvider(opts...)
	case ServiceChatGPT:
		return NewOpenAIProvider(opts...)
	default:
		return nil, fmt.Errorf("llm: unsupported service %q", service)
	}
}
