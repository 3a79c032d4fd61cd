// Package summarize builds aggregate views over categorized transactions.
package summarize

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsethi/finanalyzer/cmd/root"
	"jsethi/finanalyzer/internal/broadcategory"
	"jsethi/finanalyzer/internal/classifier"
	"jsethi/finanalyzer/internal/common"
	"jsethi/finanalyzer/internal/logging"
	"jsethi/finanalyzer/internal/models"
	"jsethi/finanalyzer/internal/store"
	"jsethi/finanalyzer/internal/summary"
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Build category, broad-category and portfolio summaries",
	Long: `Summarize a CSV batch of transactions: per-category debit/credit totals
with transfer sub-categories rolled up, broad-category totals, and the
portfolio summary with self-transfer amounts excluded from external cash
flow entirely.`,
	RunE: summarizeFunc,
}

// summaryOutput is the fixed-shape record handed to external reporting.
type summaryOutput struct {
	Overall         models.OverallSummary            `json:"overall_summary"`
	Portfolio       models.PortfolioSummary          `json:"portfolio_summary"`
	Categories      []models.CategorySummaryRow      `json:"category_summary"`
	BroadCategories []models.BroadCategorySummaryRow `json:"broad_category_summary"`
}

func summarizeFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Summarize command called")

	if root.SharedFlags.Input == "" {
		root.Log.Error("Input file is required")
		return cmd.Usage()
	}

	ruleStore := store.NewRuleStore("", "", "")
	tables, err := ruleStore.LoadTables()
	if err != nil {
		return err
	}

	transactions, err := common.ReadCSVFile[models.Transaction](root.SharedFlags.Input)
	if err != nil {
		return err
	}

	c := classifier.New(tables, logging.NewLogrusAdapterFromLogger(root.Log))
	transactions = c.CategorizeAll(transactions)
	transactions = broadcategory.Apply(transactions, tables.BroadCategories)

	out := summaryOutput{
		Overall:         summary.Overall(transactions),
		Portfolio:       summary.Portfolio(transactions),
		Categories:      summary.ByCategory(transactions),
		BroadCategories: summary.ByBroadCategory(transactions),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = "summary.json"
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	root.Log.WithField("file", output).Info("Wrote summary")
	return nil
}
