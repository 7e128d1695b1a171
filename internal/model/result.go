package model

// ExtractionSource indicates which extraction path produced a record.
type ExtractionSource string

const (
	// SourceAI marks records produced by the AI structuring path.
	SourceAI ExtractionSource = "ai"
	// SourceRules marks records produced by the rule-based fallback path.
	SourceRules ExtractionSource = "rules"
)

// ExtractionResult is a canonical transaction together with its provenance.
// Degraded is set when the fallback path produced nothing but its documented
// defaults, so callers can tell a confident extraction from a lucky one.
type ExtractionResult struct {
	Source      ExtractionSource
	Transaction Transaction
	Degraded    bool
}
