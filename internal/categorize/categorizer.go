// Package categorize provides deterministic keyword-based transaction
// categorization for the rule-based fallback path. No ML, no probabilities:
// every result is explainable by a single keyword table entry.
package categorize

import (
	"strings"

	"github.com/snapledger/snapledger/internal/model"
)

// tables is the process-wide immutable keyword configuration, loaded once.
var tables = defaultTables()

// Categorize maps a free-text description and a direction onto a category.
// Credited transactions are tested against the Income keywords first; after
// that the tables are evaluated in declared order and the first category
// with a substring match wins. It never fails: no match yields
// CategoryUncategorized.
func Categorize(description string, direction model.Direction) string {
	desc := strings.ToLower(description)

	if direction == model.DirectionCredit {
		for _, kw := range incomeKeywords() {
			if strings.Contains(desc, kw) {
				return "Income"
			}
		}
	}

	for _, table := range tables {
		if table.Category == "Income" && direction != model.DirectionCredit {
			// Debits are never income; skip the table entirely so keywords
			// like "deposit" on outgoing transfers cannot mislabel them.
			continue
		}
		for _, kw := range table.Keywords {
			if strings.Contains(desc, kw) {
				return table.Category
			}
		}
	}

	return CategoryUncategorized
}

func incomeKeywords() []string {
	for _, table := range tables {
		if table.Category == "Income" {
			return table.Keywords
		}
	}
	return nil
}
