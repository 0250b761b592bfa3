package llmprovider_test

import (
	"errors"
	"testing"

	"daily-task-agent/config"
	"daily-task-agent/pkg/llmprovider"
)

func TestInitializeProviders(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		if _, _, err := llmprovider.InitializeProviders(nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("nothing enabled", func(t *testing.T) {
		cfg := &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "gemini", APIKey: "k"}}}
		_, _, err := llmprovider.InitializeProviders(cfg)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("sorted by priority, broken ones skipped", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "second", Model: "gemini-b"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "first", Model: "gemini-a", Timeout: "5s"},
				{Name: "unknown", Enabled: true, Priority: 3, APIKey: "k", Model: "x"},
				{Name: "gemini", Enabled: true, Priority: 4, Model: "no-key"},
			},
		}

		providers, skipped, err := llmprovider.InitializeProviders(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 2 {
			t.Fatalf("expected 2 providers, got %d", len(providers))
		}
		if providers[0].Model() != "gemini-a" || providers[1].Model() != "gemini-b" {
			t.Errorf("unexpected order: %s, %s", providers[0].Model(), providers[1].Model())
		}
		if len(skipped) != 2 {
			t.Errorf("expected 2 skipped providers, got %v", skipped)
		}
	})

	t.Run("mixed providers", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 3, APIKey: "k"},
				{Name: "Qwen", Enabled: true, Priority: 2, APIKey: "k", Timeout: "10s"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k"},
			},
		}

		providers, skipped, err := llmprovider.InitializeProviders(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(skipped) != 0 {
			t.Errorf("unexpected skipped providers: %v", skipped)
		}
		names := []string{"gemini", "qwen", "deepseek"}
		if len(providers) != len(names) {
			t.Fatalf("expected %d providers, got %d", len(names), len(providers))
		}
		for i, name := range names {
			if providers[i].Name() != name {
				t.Errorf("provider %d: got %s, want %s", i, providers[i].Name(), name)
			}
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Timeout: "soon"},
			},
		}
		if _, _, err := llmprovider.InitializeProviders(cfg); err == nil {
			t.Fatal("expected error when the only provider is invalid")
		}
	})
}
