package llm

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// geminiClient implements the Client interface over the GenAI SDK.
type geminiClient struct {
	client *genai.Client
	apiKey string
	model  string
	once   sync.Once
	initE  error
}

// newGeminiClient creates a new Gemini backend client. The underlying SDK
// client is built lazily on first use because the SDK wants a context at
// construction time.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &geminiClient{
		apiKey: cfg.APIKey,
		model:  model,
	}, nil
}

func (c *geminiClient) init(ctx context.Context) error {
	c.once.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      c.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
		})
		if err != nil {
			c.initE = fmt.Errorf("failed to create genai client: %w", err)
			return
		}
		c.client = client
	})
	return c.initE
}

// Complete sends the role-tagged turns to Gemini and returns the generated
// text.
func (c *geminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", err
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
