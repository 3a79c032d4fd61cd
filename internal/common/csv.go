// Package common provides shared file input/output used by the commands.
package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"jsethi/finanalyzer/internal/config"
	"jsethi/finanalyzer/internal/dateutils"
	"jsethi/finanalyzer/internal/models"
)

var log = config.Logger

// Delimiter is the global CSV delimiter, configurable via config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.WithField("file", filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully read CSV data")
	return rows, nil
}

// WriteCSVFile writes a slice of structs to a CSV file using gocsv.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, filePath string) error {
	log.WithField("file", filePath).Info("Writing CSV file")

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully wrote CSV data")
	return nil
}

// LoadStatementGroups reads every CSV file in a directory into a statement
// group keyed by the file's base name (bank_accounttype by convention).
// Dates are normalized to DD-MM-YYYY on load; the year provenance field is
// derived from the date when the source file does not carry one.
func LoadStatementGroups(dir string) (map[string][]models.Transaction, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading statements directory: %w", err)
	}

	groups := make(map[string][]models.Transaction)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		transactions, err := ReadCSVFile[models.Transaction](path)
		if err != nil {
			return nil, fmt.Errorf("error loading statement file %s: %w", entry.Name(), err)
		}

		key := strings.TrimSuffix(entry.Name(), ".csv")
		for i := range transactions {
			tx := &transactions[i]
			tx.SourceFile = entry.Name()
			tx.Date = dateutils.Normalize(tx.Date)
			tx.ValueDate = dateutils.Normalize(tx.ValueDate)
			if tx.Year == "" {
				if year := dateutils.ExtractYear(tx.Date); year > 0 {
					tx.Year = strconv.Itoa(year)
				}
			}
		}
		groups[key] = transactions
	}

	log.WithField("count", len(groups)).Info("Loaded statement groups")
	return groups, nil
}

// LoadAlertGroups reads a JSON file mapping bank names to lists of alert
// transactions, as produced by the alert-parsing collaborator.
func LoadAlertGroups(filePath string) (map[string][]models.AlertTransaction, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading alerts file: %w", err)
	}

	var groups map[string][]models.AlertTransaction
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("error parsing alerts file: %w", err)
	}

	log.WithField("count", len(groups)).Info("Loaded alert groups")
	return groups, nil
}
