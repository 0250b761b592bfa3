package qwen

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds one completion call. The LLM router applies its own
	// per-provider deadline on top.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens caps a reply when the request leaves MaxTokens zero.
	// Task intake replies are a single small JSON object.
	DefaultMaxTokens = 300
)

// IQwen turns free text into a task object through the DashScope chat API.
// Implementations are safe for concurrent use.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// Config configures the client. Only APIKey is required.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration // zero means DefaultTimeout
	MaxTokens int           // zero means DefaultMaxTokens
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

func (c *Config) setDefaults() error {
	if c.APIKey == "" {
		return fmt.Errorf("qwen: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.HTTPClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	return nil
}

// New returns a client for the OpenAI-compatible DashScope endpoint.
func New(cfg Config) (IQwen, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
