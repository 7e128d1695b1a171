package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract a transaction from OCR text",
		Long: `Extract a canonical transaction record from raw OCR text.

Reads the text from the given file, or from stdin when no file (or "-")
is given. The result is printed as JSON; pass --save to also persist it.

Examples:
  snapledger extract receipt.txt
  cat receipt.txt | snapledger extract
  snapledger extract receipt.txt --save --user alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().Bool("save", false, "Persist the extracted transaction")
	cmd.Flags().StringP("user", "u", "local", "User ID to record transactions under")

	_ = viper.BindPFlag("extract.save", cmd.Flags().Lookup("save"))
	_ = viper.BindPFlag("extract.user", cmd.Flags().Lookup("user"))

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readInput(args)
	if err != nil {
		return err
	}

	extractor, err := createExtractor()
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()

	result, err := createEngine(extractor).Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if viper.GetBool("extract.save") {
		store, storeErr := initStorage(ctx)
		if storeErr != nil {
			return fmt.Errorf("failed to open database: %w", storeErr)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("Failed to close database", "error", closeErr)
			}
		}()

		txn := result.Transaction
		txn.UserID = viper.GetString("extract.user")
		saved, saveErr := store.SaveTransaction(ctx, &txn)
		if saveErr != nil {
			return fmt.Errorf("failed to save transaction: %w", saveErr)
		}
		slog.Info("Saved transaction", "id", saved.ID, "category", saved.Category)
	}

	return writeResult(cmd.OutOrStdout(), result)
}

// readInput returns the OCR text from the named file, or stdin when no
// file (or "-") was given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
