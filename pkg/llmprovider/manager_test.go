package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	block      bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider string) *Response {
	return &Response{
		Content: Message{
			Role:  "model",
			Parts: []Part{{Text: "Hello from "}, {Text: provider}},
		},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello", 300))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text() != "Hello from primary" {
		t.Errorf("unexpected text: %q", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary to be called once, got %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log, got %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_SingleAttemptPerProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", shouldFail: true}
	manager := NewManager([]Provider{primary}, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello", 0))
	if err == nil {
		t.Fatal("Expected error")
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one attempt, got %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "s", response: okResponse("secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello", 0))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary response, got %s", resp.ProviderName)
	}
	if primary.callCount != 1 || secondary.callCount != 1 {
		t.Errorf("unexpected call counts primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "s", response: okResponse("secondary")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello", 0))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got %v", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "primary" {
		t.Errorf("Expected ProviderError for primary, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary not to be called, got %d", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello", 0))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "p", response: okResponse("primary")}
	manager := NewManager([]Provider{primary}, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("provider must not be called for an invalid request")
	}
}

func TestGenerateContent_TotalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "s", block: true}
	next := &mockProvider{name: "next", model: "n", response: okResponse("next")}

	manager := NewManager([]Provider{slow, next}, &Config{
		FallbackEnabled: true,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello", 0))
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("Expected ErrProviderTimeout, got %v", err)
	}
	if next.callCount != 0 {
		t.Errorf("Expected chain to stop after the deadline, next called %d times", next.callCount)
	}
}
