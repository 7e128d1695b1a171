package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapledger/snapledger/internal/categorize"
	"github.com/snapledger/snapledger/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category vocabularies",
		Long: `List both category vocabularies: the closed set the AI structuring
path must answer from, and the keyword vocabulary the rule-based
fallback assigns.`,
		RunE: runCategories,
	}
}

func runCategories(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "AI structuring categories:")
	for _, c := range model.RecordCategories {
		fmt.Fprintf(out, "  %s\n", c)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Keyword fallback categories (in match order):")
	for _, c := range categorize.Categories() {
		fmt.Fprintf(out, "  %s\n", c)
	}
	fmt.Fprintf(out, "  %s (no keyword matched)\n", categorize.CategoryUncategorized)

	return nil
}
