// Package engine orchestrates the two extraction strategies: the AI
// structuring path and the rule-based fallback. One path or the other
// produces the whole canonical record; fields are never mixed, so
// provenance stays auditable.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/snapledger/snapledger/internal/categorize"
	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/rules"
)

// defaultTimeout bounds the single AI structuring attempt.
const defaultTimeout = 30 * time.Second

// defaultDescription is used when the AI path returns no merchant name.
const defaultDescription = "Transaction"

// Structurer is the AI structuring path contract.
type Structurer interface {
	StructureReceipt(ctx context.Context, ocrText string) (model.StructuredRecord, error)
}

// Engine converts raw OCR text into a canonical transaction.
type Engine struct {
	structurer Structurer
	logger     *slog.Logger
	now        func() time.Time
	timeout    time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides the per-call ceiling on the AI structuring attempt.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// New creates an extraction engine around the given structurer.
func New(structurer Structurer, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		structurer: structurer,
		logger:     logger,
		now:        time.Now,
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract resolves raw OCR text into a canonical transaction. The AI path
// is tried exactly once; any failure there (transport, timeout, schema
// violation) falls back to the rule-based parser, which cannot fail. Empty
// input is the only terminal error besides the caller's own context
// expiring.
func (e *Engine) Extract(ctx context.Context, ocrText string) (model.ExtractionResult, error) {
	if strings.TrimSpace(ocrText) == "" {
		return model.ExtractionResult{}, fmt.Errorf("extract: %w", common.ErrEmptyInput)
	}

	aiCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	record, err := e.structurer.StructureReceipt(aiCtx, ocrText)
	if err == nil {
		return e.fromStructured(record), nil
	}

	// A dead caller context means the caller is gone; surface its error
	// instead of handing back a fallback result nobody will read.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.ExtractionResult{}, fmt.Errorf("extract: %w", ctxErr)
	}

	e.logger.Warn("AI structuring failed, falling back to rule-based parser",
		"error", err)

	return e.fromRules(ocrText), nil
}

// fromStructured maps a validated AI record onto the canonical shape.
func (e *Engine) fromStructured(record model.StructuredRecord) model.ExtractionResult {
	date := e.now().Format("2006-01-02")
	if record.Date != nil {
		date = *record.Date
	}

	description := defaultDescription
	if record.SubCategory != nil && *record.SubCategory != "" {
		description = *record.SubCategory
	}

	notes := ""
	if record.Note != nil {
		notes = *record.Note
	}

	return model.ExtractionResult{
		Source: model.SourceAI,
		Transaction: model.Transaction{
			Date:        date,
			Description: description,
			Amount:      record.Amount,
			Type:        record.Type.Direction(),
			Category:    record.Category,
			Notes:       notes,
		},
	}
}

// fromRules runs the fallback parser and keyword categorizer.
func (e *Engine) fromRules(ocrText string) model.ExtractionResult {
	parsed := rules.Parse(ocrText)
	category := categorize.Categorize(parsed.Description, parsed.Type)

	return model.ExtractionResult{
		Source:   model.SourceRules,
		Degraded: rules.IsAllDefaults(parsed, e.now()),
		Transaction: model.Transaction{
			Date:        parsed.Date,
			Description: parsed.Description,
			Amount:      parsed.Amount,
			Type:        parsed.Type,
			Category:    category,
		},
	}
}
