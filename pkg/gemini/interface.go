package gemini

import (
	"context"
	"errors"
	"time"
)

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used
	Model() string
}

// Config holds the settings for New.
type Config struct {
	APIKey string
	Model  string
	APIURL string
	// Timeout bounds a single HTTP call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	return nil
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := NewClient(cfg.APIKey)
	if cfg.Model != "" {
		c.model = cfg.Model
	}
	if cfg.APIURL != "" {
		c.apiURL = cfg.APIURL
	}
	if cfg.Timeout > 0 {
		c.httpClient.Timeout = cfg.Timeout
	}
	return c, nil
}
