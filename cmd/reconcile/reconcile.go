// Package reconcile matches statement transactions against alert transactions.
package reconcile

import (
	"github.com/spf13/cobra"

	"jsethi/finanalyzer/cmd/root"
	"jsethi/finanalyzer/internal/common"
	"jsethi/finanalyzer/internal/config"
	"jsethi/finanalyzer/internal/logging"
	"jsethi/finanalyzer/internal/reconcile"
	"jsethi/finanalyzer/internal/report"
)

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile statement transactions against alert transactions",
	Long: `Reconcile statement groups (one CSV per bank_accounttype) against alert
groups (a JSON file keyed by bank) using weighted fuzzy matching on amount,
date, merchant and direction. Produces a JSON report with per-group and
overall match counts.`,
	RunE: reconcileFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.StatementsDir, "statements", "s", "", "Directory of statement CSV files")
	Cmd.Flags().StringVarP(&root.AlertsFile, "alerts", "a", "", "JSON file of alert transactions grouped by bank")
	Cmd.Flags().BoolVar(&root.Exclusive, "exclusive", false, "Claim each alert transaction at most once")
	_ = Cmd.MarkFlagRequired("statements")
	_ = Cmd.MarkFlagRequired("alerts")
}

func reconcileFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Reconcile command called")

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	statementGroups, err := common.LoadStatementGroups(root.StatementsDir)
	if err != nil {
		return err
	}

	alertGroups, err := common.LoadAlertGroups(root.AlertsFile)
	if err != nil {
		return err
	}

	opts := reconcile.Options{
		AmountTolerance:   cfg.Reconciliation.AmountTolerance,
		DayTolerance:      cfg.Reconciliation.DayTolerance,
		ExclusiveMatching: cfg.Reconciliation.ExclusiveMatching || root.Exclusive,
	}
	engine := reconcile.NewEngine(opts, logging.NewLogrusAdapterFromLogger(root.Log))

	matches := engine.Reconcile(statementGroups, alertGroups)
	rpt := reconcile.BuildReport(matches)

	output := root.SharedFlags.Output
	if output == "" {
		output = "reconciliation_report.json"
	}
	if err := report.NewGenerator().WriteFile(&rpt, "json", output); err != nil {
		return err
	}

	root.Log.WithFields(map[string]interface{}{
		"total":   rpt.Overall.TotalMatches,
		"exact":   rpt.Overall.ExactMatches,
		"fuzzy":   rpt.Overall.FuzzyMatches,
		"partial": rpt.Overall.PartialMatches,
	}).Info("Reconciliation complete")
	return nil
}
