// Package main contains the snapledger CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/snapledger/snapledger/internal/config"
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/service"
	"github.com/snapledger/snapledger/internal/storage"
)

// initStorage opens the configured database and runs migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/snapledger/snapledger.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// extractionOutput is the JSON shape the extract and scan commands emit.
type extractionOutput struct {
	Source      string            `json:"source"`
	Degraded    bool              `json:"degraded,omitempty"`
	Transaction transactionOutput `json:"transaction"`
}

type transactionOutput struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Notes       string  `json:"notes,omitempty"`
	ImageRef    string  `json:"image_ref,omitempty"`
	Amount      float64 `json:"amount"`
}

// writeResult renders an extraction result as indented JSON.
func writeResult(w io.Writer, result model.ExtractionResult) error {
	out := extractionOutput{
		Source:   string(result.Source),
		Degraded: result.Degraded,
		Transaction: transactionOutput{
			Date:        result.Transaction.Date,
			Description: result.Transaction.Description,
			Category:    result.Transaction.Category,
			Type:        string(result.Transaction.Type),
			Notes:       result.Transaction.Notes,
			ImageRef:    result.Transaction.ImageRef,
			Amount:      result.Transaction.Amount,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
