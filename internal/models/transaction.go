// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"

	"jsethi/finanalyzer/internal/currencyutils"
)

// Transaction represents a single statement transaction flowing through the
// classification, aggregation and reconciliation stages. Amounts are stored
// as non-negative magnitudes; exactly one of Debit or Credit is positive in
// the common case, but the model does not forbid both being zero.
type Transaction struct {
	Date          string          `csv:"Date"`          // Date in DD-MM-YYYY format
	ValueDate     string          `csv:"ValueDate"`     // Value date in DD-MM-YYYY format
	Description   string          `csv:"Description"`   // Free-text narration, origin field for classification
	Reference     string          `csv:"Reference"`     // Cheque/reference number, never a cross-source join key
	Debit         decimal.Decimal `csv:"Debit"`         // Debit magnitude
	Credit        decimal.Decimal `csv:"Credit"`        // Credit magnitude
	Balance       decimal.Decimal `csv:"Balance"`       // Running balance, informational only
	Category      string          `csv:"Category"`      // Assigned by the classifier
	BroadCategory string          `csv:"BroadCategory"` // Derived from Category by the aggregator
	SourceBank    string          `csv:"SourceBank"`    // Provenance metadata
	SourceFile    string          `csv:"SourceFile"`    // Provenance metadata
	Year          string          `csv:"Year"`          // Provenance metadata
}

// IsDebit returns true if the transaction moves money out of the account.
func (t *Transaction) IsDebit() bool {
	return currencyutils.IsPositive(t.Debit)
}

// IsCredit returns true if the transaction moves money into the account.
func (t *Transaction) IsCredit() bool {
	return currencyutils.IsPositive(t.Credit)
}

// Amount returns the magnitude of whichever side of the ledger is populated.
func (t *Transaction) Amount() decimal.Decimal {
	if t.IsDebit() {
		return t.Debit
	}
	return t.Credit
}

// Type returns the debit/credit direction tag used when comparing against
// alert records.
func (t *Transaction) Type() string {
	if t.IsDebit() {
		return TypeDebit
	}
	return TypeCredit
}
