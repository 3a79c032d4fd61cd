// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jsethi/finanalyzer/internal/common"
	"jsethi/finanalyzer/internal/config"
	"jsethi/finanalyzer/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finanalyzer",
		Short: "A CLI tool to categorize, summarize and reconcile financial transactions.",
		Long: `finanalyzer normalizes statement and alert transactions, categorizes them
with keyword rule tables, rolls categories up into portfolio-level buckets
with self-transfer elimination, and reconciles the two sources by fuzzy
multi-factor matching.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finanalyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			store.SetLogger(Log)
			common.SetLogger(Log)

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	Description string

	// Specific reconcile command flags
	StatementsDir string
	AlertsFile    string
	Exclusive     bool
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
