// Package rules implements the deterministic fallback parser that extracts a
// transaction from raw OCR text with ordered regex heuristics. Each
// sub-extractor guarantees a default, so parsing never fails; it only
// degrades.
package rules

import (
	"time"

	"github.com/snapledger/snapledger/internal/model"
)

// DefaultMerchant is the merchant used when no candidate line survives.
const DefaultMerchant = "Unknown Merchant"

// Parse runs the four independent sub-extractions over the OCR text and
// assembles a ParsedTransaction. Missing data yields the documented
// defaults, never an error.
func Parse(text string) model.ParsedTransaction {
	return parseAt(text, time.Now())
}

func parseAt(text string, now time.Time) model.ParsedTransaction {
	return model.ParsedTransaction{
		Date:        extractDateAt(text, now),
		Amount:      ExtractAmount(text),
		Description: ExtractMerchant(text),
		Type:        ExtractDirection(text),
	}
}

// IsAllDefaults reports whether p consists solely of the documented
// fallback values, i.e. the parser found nothing usable in the text.
func IsAllDefaults(p model.ParsedTransaction, now time.Time) bool {
	return p.Amount == 0 &&
		p.Description == DefaultMerchant &&
		p.Date == now.Format("2006-01-02")
}
