// Package report renders reconciliation reports for persistence by an
// external storage collaborator.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"jsethi/finanalyzer/internal/config"
	"jsethi/finanalyzer/internal/reconcile"
)

// Generator renders reconciliation reports.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a new report Generator.
func NewGenerator() *Generator {
	return &Generator{logger: config.Logger}
}

// Generate renders a report in the specified format. Only "json" is
// supported; the report structure is persisted verbatim.
func (g *Generator) Generate(r *reconcile.Report, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(r)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteFile renders the report and writes it to the given path.
func (g *Generator) WriteFile(r *reconcile.Report, format, filePath string) error {
	data, err := g.Generate(r, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	g.logger.WithField("file", filePath).Info("Wrote reconciliation report")
	return nil
}

func (g *Generator) generateJSON(r *reconcile.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}
