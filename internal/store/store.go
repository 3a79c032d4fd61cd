// Package store loads the rule tables from YAML files, falling back to the
// built-in defaults when no file is present.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"jsethi/finanalyzer/internal/config"
	"jsethi/finanalyzer/internal/rules"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore manages loading of category rule data.
type RuleStore struct {
	KeywordsFile        string
	TransfersFile       string
	BroadCategoriesFile string
}

// NewRuleStore creates a store for the rule-table files. Empty file names
// fall back to the standard names resolved from the standard locations.
func NewRuleStore(keywordsFile, transfersFile, broadCategoriesFile string) *RuleStore {
	return &RuleStore{
		KeywordsFile:        keywordsFile,
		TransfersFile:       transfersFile,
		BroadCategoriesFile: broadCategoriesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "finanalyzer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTables loads all three rule tables, substituting the built-in default
// for any table whose file is absent.
func (s *RuleStore) LoadTables() (rules.Tables, error) {
	keywords, err := s.LoadKeywords()
	if err != nil {
		return rules.Tables{}, err
	}
	transfers, err := s.LoadTransfers()
	if err != nil {
		return rules.Tables{}, err
	}
	broad, err := s.LoadBroadCategories()
	if err != nil {
		return rules.Tables{}, err
	}
	return rules.Tables{Keywords: keywords, Transfers: transfers, BroadCategories: broad}, nil
}

// LoadKeywords loads the general keyword table from YAML.
func (s *RuleStore) LoadKeywords() (rules.KeywordTable, error) {
	filename := s.KeywordsFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, found, err := s.read(filename)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Debugf("Categories file not found, using built-in keyword table")
		return rules.DefaultKeywords, nil
	}

	var table rules.KeywordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.Debugf("Loaded %d category keywords from %s", len(table), filename)
	return table, nil
}

// LoadTransfers loads the hierarchical transfer table from YAML.
func (s *RuleStore) LoadTransfers() (rules.TransferTable, error) {
	filename := s.TransfersFile
	if filename == "" {
		filename = "transfers.yaml"
	}

	data, found, err := s.read(filename)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Debugf("Transfers file not found, using built-in transfer table")
		return rules.DefaultTransfers, nil
	}

	var table rules.TransferTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing transfers file: %w", err)
	}

	log.Debugf("Loaded %d transfer domains from %s", len(table), filename)
	return table, nil
}

// LoadBroadCategories loads the broad-category map from YAML.
func (s *RuleStore) LoadBroadCategories() (rules.BroadCategoryMap, error) {
	filename := s.BroadCategoriesFile
	if filename == "" {
		filename = "broad_categories.yaml"
	}

	data, found, err := s.read(filename)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Debugf("Broad categories file not found, using built-in map")
		return rules.DefaultBroadCategories, nil
	}

	var table rules.BroadCategoryMap
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing broad categories file: %w", err)
	}

	log.Debugf("Loaded %d broad category mappings from %s", len(table), filename)
	return table, nil
}

// read resolves and reads a rule file. A missing file is reported through
// the found flag, not as an error.
func (s *RuleStore) read(filename string) ([]byte, bool, error) {
	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error resolving rule file %s: %w", filename, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false, fmt.Errorf("error reading rule file %s: %w", filePath, err)
	}
	return data, true, nil
}
