package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/engine"
	"github.com/snapledger/snapledger/internal/service"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Extract and persist a directory of OCR dumps",
		Long: `Process every .txt file in a directory as OCR text, extracting and
persisting a transaction for each one. Duplicates already in the
database are skipped.

Examples:
  snapledger batch ./receipts --user alice
  snapledger batch ./receipts --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().StringP("user", "u", "local", "User ID to record transactions under")
	cmd.Flags().Bool("dry-run", false, "Extract without saving")

	_ = viper.BindPFlag("batch.user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("batch.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := args[0]
	userID := viper.GetString("batch.user")
	dryRun := viper.GetBool("batch.dry_run")

	files, err := collectTextFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt files found in %s", dir)
	}

	extractor, err := createExtractor()
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()
	eng := createEngine(extractor)

	var store service.Storage
	if !dryRun {
		store, err = initStorage(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("Failed to close database", "error", closeErr)
			}
		}()
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Extracting receipts..."),
	)

	var saved, skipped, failed int
	for _, path := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if procErr := processFile(ctx, eng, store, path, userID); procErr != nil {
			switch {
			case errors.Is(procErr, common.ErrDuplicateEntry):
				skipped++
			default:
				failed++
				common.LogError(procErr, "Failed to process receipt", common.Fields{"file": path})
			}
		} else {
			saved++
		}
		_ = bar.Add(1)
	}

	slog.Info("Batch complete",
		"total", len(files),
		"saved", saved,
		"duplicates", skipped,
		"failed", failed,
		"dry_run", dryRun)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// processFile extracts one OCR dump and persists the result. Persistence
// is retried; extraction itself never is.
func processFile(ctx context.Context, eng *engine.Engine, store service.Storage, path, userID string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := eng.Extract(ctx, string(data))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if result.Degraded {
		slog.Warn("Extraction degraded to defaults", "file", path)
	}

	if store == nil {
		return nil
	}

	txn := result.Transaction
	txn.UserID = userID
	return common.WithRetry(ctx, func() error {
		_, saveErr := store.SaveTransaction(ctx, &txn)
		if errors.Is(saveErr, common.ErrDuplicateEntry) {
			// Duplicates never resolve themselves; fail fast.
			return &common.RetryableError{Err: saveErr, Retryable: false}
		}
		return saveErr
	}, service.RetryOptions{})
}

// collectTextFiles lists the .txt files in dir in a stable order.
func collectTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
