package rules

import (
	"strings"

	"github.com/snapledger/snapledger/internal/model"
)

// creditKeywords indicate money coming in. Receipt and bank text is
// dominated by purchases, so absent contrary evidence the direction
// defaults to debit.
var creditKeywords = []string{
	"credited", "refund", "salary", "payroll", "deposit", "bonus",
	"commission", "dividend", "interest", "payment received", "transfer in",
	"income", "credit", "received",
}

// ExtractDirection scans for credit-indicating keywords; any hit yields
// credit, everything else is a debit.
func ExtractDirection(text string) model.Direction {
	lower := strings.ToLower(text)
	for _, kw := range creditKeywords {
		if strings.Contains(lower, kw) {
			return model.DirectionCredit
		}
	}
	return model.DirectionDebit
}
