package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/snapledger/snapledger/internal/engine"
	"github.com/snapledger/snapledger/internal/llm"
)

// createExtractor builds the AI structuring backend from configuration.
// This function is shared by every command that runs the pipeline.
func createExtractor() (*llm.Extractor, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini" // default provider
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     viper.GetDuration("llm.timeout"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
		CacheTTL:    viper.GetDuration("llm.cache_ttl"),
	}

	// Check viper first, then the provider's conventional environment variable.
	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		switch provider {
		case "gemini":
			apiKey = os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		case "openai":
			apiKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key found for LLM provider %q", provider)
	}
	cfg.APIKey = apiKey

	return llm.NewExtractor(cfg, slog.Default())
}

// createEngine wires the extractor into the extraction engine.
func createEngine(extractor *llm.Extractor) *engine.Engine {
	var opts []engine.Option
	if timeout := viper.GetDuration("extraction.timeout"); timeout > 0 {
		opts = append(opts, engine.WithTimeout(timeout))
	}
	return engine.New(extractor, slog.Default(), opts...)
}
