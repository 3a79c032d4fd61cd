// Package classifier resolves transaction categories from free-text
// descriptions using the keyword rule tables.
package classifier

import (
	"strings"

	"jsethi/finanalyzer/internal/logging"
	"jsethi/finanalyzer/internal/models"
	"jsethi/finanalyzer/internal/rules"
)

// Classify resolves a category for a description against a keyword table.
// Keys are tried longest first so a short generic keyword never pre-empts a
// longer, more specific one contained in the same description; equal lengths
// are broken lexicographically. Empty input returns the default label.
func Classify(description string, table rules.KeywordTable) string {
	return classify(description, table, table.SortedKeys(), models.CategoryOthers)
}

// ClassifyTransfer resolves a two-part "UPI-Domain-Subdomain" label for a
// transfer-marked description against the flattened hierarchical table.
// Descriptions matching no keyword fall back to the designated "Other" leaf
// under the transfer domain.
func ClassifyTransfer(description string, flat rules.KeywordTable) string {
	return classify(description, flat, flat.SortedKeys(), models.TransferDefault)
}

func classify(description string, table rules.KeywordTable, sortedKeys []string, defaultLabel string) string {
	if description == "" {
		return defaultLabel
	}

	lowerDesc := strings.ToLower(description)
	for _, keyword := range sortedKeys {
		if strings.Contains(lowerDesc, strings.ToLower(keyword)) {
			return table[keyword]
		}
	}

	return defaultLabel
}

// Classifier categorizes transactions using a fixed set of rule tables. The
// sorted key orders are computed once at construction so batch runs do not
// re-sort per transaction.
type Classifier struct {
	keywords     rules.KeywordTable
	keywordKeys  []string
	transfers    rules.KeywordTable
	transferKeys []string
	logger       logging.Logger
}

// New builds a Classifier from the rule tables, flattening the hierarchical
// transfer table eagerly.
func New(tables rules.Tables, logger logging.Logger) *Classifier {
	flat := tables.Transfers.Flatten()
	return &Classifier{
		keywords:     tables.Keywords,
		keywordKeys:  tables.Keywords.SortedKeys(),
		transfers:    flat,
		transferKeys: flat.SortedKeys(),
		logger:       logger,
	}
}

// Categorize resolves the category for a single description. Descriptions
// carrying the transfer marker are routed to the transfer sub-classifier and
// never reach the general table. A general result of the generic transfer
// label without the marker present is a false positive and is downgraded to
// the default label.
func (c *Classifier) Categorize(description string) string {
	if strings.Contains(strings.ToUpper(description), models.TransferMarker) {
		category := classify(description, c.transfers, c.transferKeys, models.TransferDefault)
		c.logger.WithFields(
			logging.Field{Key: logging.FieldCategory, Value: category},
		).Debug("Transfer transaction categorized")
		return category
	}

	category := classify(description, c.keywords, c.keywordKeys, models.CategoryOthers)
	if category == models.CategoryUPITransfer {
		// Generic transfer label without the marker present.
		category = models.CategoryOthers
	}
	return category
}

// CategorizeAll assigns a category to every transaction in place and
// returns the slice for chaining. Categories already assigned within the
// run are left untouched.
func (c *Classifier) CategorizeAll(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		if transactions[i].Category != "" {
			continue
		}
		transactions[i].Category = c.Categorize(transactions[i].Description)
	}
	c.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Categorized transactions")
	return transactions
}
