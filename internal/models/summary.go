package models

import (
	"github.com/shopspring/decimal"
)

// CategorySummaryRow is one aggregate row of the per-category summary.
// Counts tally rows with a non-zero amount on the respective side.
type CategorySummaryRow struct {
	Category    string          `json:"category" csv:"Category"`
	TotalDebit  decimal.Decimal `json:"total_debit" csv:"TotalDebit"`
	DebitCount  int             `json:"debit_count" csv:"DebitCount"`
	TotalCredit decimal.Decimal `json:"total_credit" csv:"TotalCredit"`
	CreditCount int             `json:"credit_count" csv:"CreditCount"`
}

// BroadCategorySummaryRow aggregates transactions per broad category.
type BroadCategorySummaryRow struct {
	BroadCategory    string          `json:"broad_category" csv:"BroadCategory"`
	TotalDebits      decimal.Decimal `json:"total_debits" csv:"TotalDebits"`
	TotalCredits     decimal.Decimal `json:"total_credits" csv:"TotalCredits"`
	TransactionCount int             `json:"transaction_count" csv:"TransactionCount"`
	NetAmount        decimal.Decimal `json:"net_amount" csv:"NetAmount"`
}

// PortfolioSummary reports true external cash flow. Both legs of every
// internal transfer are excluded from the inflow/outflow totals entirely,
// not netted against each other.
type PortfolioSummary struct {
	TotalTransactions            int             `json:"total_transactions"`
	ExternalTransactions         int             `json:"external_transactions"`
	InternalTransferTransactions int             `json:"self_transfer_transactions"`
	ExternalInflow               decimal.Decimal `json:"external_inflows"`
	ExternalOutflow              decimal.Decimal `json:"external_outflows"`
	NetExternalChange            decimal.Decimal `json:"net_external_change"`
}

// OverallSummary holds whole-ledger totals before any self-transfer
// elimination is applied.
type OverallSummary struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	NetChange    decimal.Decimal `json:"net_change"`
	DebitCount   int             `json:"debit_count"`
	CreditCount  int             `json:"credit_count"`
}
