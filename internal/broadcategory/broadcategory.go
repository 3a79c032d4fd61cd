// Package broadcategory rolls detailed category labels up into the small
// fixed set of portfolio-level broad categories.
package broadcategory

import (
	"jsethi/finanalyzer/internal/models"
	"jsethi/finanalyzer/internal/rules"
)

// Map resolves the broad category for a detailed category label. The lookup
// is total: labels absent from the table resolve to "Miscellaneous".
func Map(category string, table rules.BroadCategoryMap) string {
	if broad, ok := table[category]; ok {
		return broad
	}
	return models.BroadMiscellaneous
}

// Apply assigns a broad category to every transaction in place, then runs
// the loan-direction override: a credit on a loan-account category is a
// disbursement received (income), a debit is an installment paid. The
// override inspects the amount fields, not the label, and takes precedence
// over the static map for exactly this category family.
func Apply(transactions []models.Transaction, table rules.BroadCategoryMap) []models.Transaction {
	for i := range transactions {
		tx := &transactions[i]
		tx.BroadCategory = Map(tx.Category, table)

		if rules.IsLoanCategory(tx.Category) {
			if tx.IsCredit() {
				tx.BroadCategory = models.BroadIncome
			} else if tx.IsDebit() {
				tx.BroadCategory = models.BroadLoanRepayment
			}
		}
	}
	return transactions
}
