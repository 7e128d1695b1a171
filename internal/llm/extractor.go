package llm

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/snapledger/snapledger/internal/model"
)

const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 256
	maxSubCategoryLen  = 60
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Extractor is the AI structuring path: it prompts a generation backend
// with the OCR text and validates the response into a StructuredRecord.
type Extractor struct {
	client      Client
	cache       *recordCache
	limiter     *rateLimiter
	logger      *slog.Logger
	temperature float64
	maxTokens   int
}

// NewExtractor creates an extractor backed by the configured provider.
func NewExtractor(cfg Config, logger *slog.Logger) (*Extractor, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewExtractorWithClient(client, cfg, logger), nil
}

// NewExtractorWithClient wires an extractor around an existing client.
// Used directly by tests.
func NewExtractorWithClient(client Client, cfg Config, logger *slog.Logger) *Extractor {
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Extractor{
		client:      client,
		cache:       newRecordCache(cfg.CacheTTL),
		limiter:     newRateLimiter(cfg.RateLimit),
		logger:      logger,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Close releases the cache and rate limiter background goroutines.
func (e *Extractor) Close() {
	e.cache.stop()
	e.limiter.stop()
}

// StructureReceipt sends the OCR text to the backend and returns the
// validated structured record. Transport failures and schema violations
// both surface as errors; the caller decides whether to fall back.
func (e *Extractor) StructureReceipt(ctx context.Context, ocrText string) (model.StructuredRecord, error) {
	key := cacheKey(ocrText)
	if record, found := e.cache.get(key); found {
		e.logger.Debug("structuring cache hit")
		return record, nil
	}

	if err := e.limiter.wait(ctx); err != nil {
		return model.StructuredRecord{}, err
	}

	raw, err := e.client.Complete(ctx, Request{
		System:      systemInstruction,
		Messages:    buildMessages(ocrText),
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return model.StructuredRecord{}, fmt.Errorf("generation request failed: %w", err)
	}

	record, err := parseStructuredRecord(raw)
	if err != nil {
		e.logger.Debug("structuring response rejected", "error", err)
		return model.StructuredRecord{}, err
	}

	e.cache.set(key, record)
	return record, nil
}

// parseStructuredRecord parses and validates the backend response.
// Validation is strict: a malformed response must never silently become a
// bad transaction.
func parseStructuredRecord(content string) (model.StructuredRecord, error) {
	jsonText := extractJSON(cleanMarkdownWrapper(content))
	if jsonText == "" {
		return model.StructuredRecord{}, newExtractionError("no JSON found in response")
	}

	var raw struct {
		Date        *string  `json:"date"`
		SubCategory *string  `json:"sub_category"`
		Note        *string  `json:"note"`
		Type        string   `json:"type"`
		Category    string   `json:"category"`
		Amount      *float64 `json:"amount"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return model.StructuredRecord{}, newExtractionError("invalid JSON: " + err.Error())
	}

	recordType := model.RecordType(raw.Type)
	if !recordType.Valid() {
		return model.StructuredRecord{}, newFieldError("type", fmt.Sprintf("must be %q or %q, got %q", model.RecordTypeIn, model.RecordTypeOut, raw.Type))
	}

	if !model.ValidRecordCategory(raw.Category) {
		return model.StructuredRecord{}, newFieldError("category", fmt.Sprintf("%q is not in the allowed set", raw.Category))
	}

	if raw.Amount == nil {
		return model.StructuredRecord{}, newFieldError("amount", "is missing")
	}
	if *raw.Amount < 0 {
		return model.StructuredRecord{}, newFieldError("amount", fmt.Sprintf("must not be negative, got %v", *raw.Amount))
	}

	if raw.Date != nil && !isoDateRe.MatchString(*raw.Date) {
		return model.StructuredRecord{}, newFieldError("date", fmt.Sprintf("must be YYYY-MM-DD or null, got %q", *raw.Date))
	}

	if raw.SubCategory != nil {
		normalized := strings.ToLower(strings.TrimSpace(*raw.SubCategory))
		if len(normalized) > maxSubCategoryLen {
			normalized = normalized[:maxSubCategoryLen]
		}
		raw.SubCategory = &normalized
	}

	return model.StructuredRecord{
		Date:        raw.Date,
		Type:        recordType,
		Category:    raw.Category,
		SubCategory: raw.SubCategory,
		Amount:      *raw.Amount,
		Note:        raw.Note,
	}, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}
