package llm

// Option configures a provider client at construction time.
type Option func(*clientConfig)

type clientConfig struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
}

func newClientConfig(defaultModel string, opts []Option) clientConfig {
	cfg := clientConfig{
		model:      defaultModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithAPIKey sets the API key. If not provided, the client reads the key
// from the service's environment variable.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the default model for all requests.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		c.model = model
	}
}

// WithBaseURL points the client at an alternate API endpoint. Tests use
// this to target a local HTTP server.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}

// WithMaxRetries sets the maximum number of retries for transient errors.
// Retry behavior before that limit belongs to the underlying SDK.
func WithMaxRetries(n int) Option {
	return func(c *clientConfig) {
		c.maxRetries = n
	}
}
