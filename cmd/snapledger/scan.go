package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snapledger/snapledger/internal/ocr"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Extract a transaction from a receipt image",
		Long: `Run OCR on a receipt image and extract a canonical transaction record.

The image is sent to the Cloud Vision API for text detection, then the
detected text goes through the same extraction pipeline as the extract
command.

Examples:
  snapledger scan receipt.jpg
  snapledger scan receipt.jpg --save --user alice`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().Bool("save", false, "Persist the extracted transaction")
	cmd.Flags().StringP("user", "u", "local", "User ID to record transactions under")

	_ = viper.BindPFlag("scan.save", cmd.Flags().Lookup("save"))
	_ = viper.BindPFlag("scan.user", cmd.Flags().Lookup("user"))

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	imagePath := args[0]

	image, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", imagePath, err)
	}

	provider, err := createOCRProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to create OCR provider: %w", err)
	}

	text, err := provider.DetectText(ctx, image)
	if err != nil {
		return fmt.Errorf("OCR failed for %s: %w", imagePath, err)
	}
	slog.Debug("OCR complete", "image", imagePath, "chars", len(text))

	extractor, err := createExtractor()
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()

	result, err := createEngine(extractor).Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	result.Transaction.ImageRef = imagePath

	if viper.GetBool("scan.save") {
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
		txn.UserID = viper.GetString("scan.user")
		saved, saveErr := store.SaveTransaction(ctx, &txn)
		if saveErr != nil {
			return fmt.Errorf("failed to save transaction: %w", saveErr)
		}
		slog.Info("Saved transaction", "id", saved.ID, "category", saved.Category)
	}

	return writeResult(cmd.OutOrStdout(), result)
}

// createOCRProvider builds the Vision text detector from configuration.
func createOCRProvider(ctx context.Context) (ocr.Provider, error) {
	cfg := ocr.Config{
		Provider: viper.GetString("ocr.provider"),
		APIKey:   viper.GetString("ocr.api_key"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key found for the Vision API")
	}
	return ocr.NewProvider(ctx, cfg)
}
