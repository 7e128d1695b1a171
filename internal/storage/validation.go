package storage

import (
	"fmt"
	"regexp"

	"github.com/snapledger/snapledger/internal/model"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateTransaction rejects records the extraction layer should never
// produce. The constraint lives here too so a bug upstream cannot write a
// malformed row.
func validateTransaction(txn *model.Transaction) error {
	if txn.UserID == "" {
		return fmt.Errorf("transaction user_id cannot be empty")
	}
	if txn.Description == "" {
		return fmt.Errorf("transaction description cannot be empty")
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("transaction type must be %q or %q, got %q",
			model.DirectionDebit, model.DirectionCredit, txn.Type)
	}
	if txn.Category == "" {
		return fmt.Errorf("transaction category cannot be empty")
	}
	if txn.Amount < 0 {
		return fmt.Errorf("transaction amount cannot be negative, got %v", txn.Amount)
	}
	if !isoDateRe.MatchString(txn.Date) {
		return fmt.Errorf("transaction date must be YYYY-MM-DD, got %q", txn.Date)
	}
	return nil
}
