// Package ocr wraps the external text-detection boundary. Two
// interchangeable Google Vision providers exist: full document text
// detection for dense receipts and plain text detection for simple
// screenshots. The extraction core is agnostic to which one supplied the
// text.
package ocr

import (
	"context"
	"fmt"
	"strings"
)

// Provider extracts raw text from one receipt or screenshot image.
type Provider interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

// Config selects and configures an OCR provider.
type Config struct {
	Provider string // "document" or "text"
	APIKey   string
}

// NewProvider creates the configured Vision provider.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "document":
		return newVisionProvider(ctx, featureDocumentText, cfg.APIKey)
	case "text":
		return newVisionProvider(ctx, featureText, cfg.APIKey)
	default:
		return nil, fmt.Errorf("unsupported OCR provider: %s", cfg.Provider)
	}
}
