// Package categorize handles transaction categorization commands
package categorize

import (
	"github.com/spf13/cobra"

	"jsethi/finanalyzer/cmd/root"
	"jsethi/finanalyzer/internal/broadcategory"
	"jsethi/finanalyzer/internal/classifier"
	"jsethi/finanalyzer/internal/common"
	"jsethi/finanalyzer/internal/logging"
	"jsethi/finanalyzer/internal/models"
	"jsethi/finanalyzer/internal/store"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize transactions using the keyword rule tables",
	Long: `Categorize a single description, or a whole CSV batch of transactions,
using the general keyword table and the hierarchical transfer table. Batch
output carries the assigned category and broad category per transaction.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Single description to categorize")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Categorize command called")

	ruleStore := store.NewRuleStore("", "", "")
	tables, err := ruleStore.LoadTables()
	if err != nil {
		return err
	}

	c := classifier.New(tables, logging.NewLogrusAdapterFromLogger(root.Log))

	if root.Description != "" {
		category := c.Categorize(root.Description)
		broad := broadcategory.Map(category, tables.BroadCategories)
		root.Log.WithFields(map[string]interface{}{
			"category":       category,
			"broad_category": broad,
		}).Info("Categorized description")
		return nil
	}

	if root.SharedFlags.Input == "" {
		root.Log.Error("Either --description or --input is required")
		return cmd.Usage()
	}

	transactions, err := common.ReadCSVFile[models.Transaction](root.SharedFlags.Input)
	if err != nil {
		return err
	}

	transactions = c.CategorizeAll(transactions)
	transactions = broadcategory.Apply(transactions, tables.BroadCategories)

	output := root.SharedFlags.Output
	if output == "" {
		output = "categorized.csv"
	}
	return common.WriteCSVFile(transactions, output)
}
