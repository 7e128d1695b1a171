package llm

import (
	"context"
	"time"
)

// Message is a single role-tagged turn sent to the generation backend.
// Roles follow the chat convention: "user" and "assistant".
type Message struct {
	Role    string
	Content string
}

// Request is a single generation request: a system instruction, the
// conversation turns, and sampling parameters.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Client defines the interface for generation backends. Implementations
// return the raw generated text; callers own all parsing and validation.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Config holds configuration for the structuring extractor and its backend.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	RateLimit   int
	CacheTTL    time.Duration
}
