// Package summary builds the aggregate views over classified transactions:
// per-category totals, broad-category totals and the self-transfer-
// eliminated portfolio summary.
package summary

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"jsethi/finanalyzer/internal/currencyutils"
	"jsethi/finanalyzer/internal/models"
)

// ByCategory groups transactions by their exact category string, summing
// debit/credit amounts and counting non-zero occurrences per side. Rows for
// transfer sub-categories (the "UPI-" prefix) are replaced by one
// consolidated "UPI" row. Rows are ordered by total debit descending; ties
// keep a stable order.
func ByCategory(transactions []models.Transaction) []models.CategorySummaryRow {
	byCategory := make(map[string]*models.CategorySummaryRow)
	order := []string{}

	for _, tx := range transactions {
		row, ok := byCategory[tx.Category]
		if !ok {
			row = &models.CategorySummaryRow{Category: tx.Category}
			byCategory[tx.Category] = row
			order = append(order, tx.Category)
		}
		accumulate(row, tx)
	}

	transferRow := models.CategorySummaryRow{Category: models.TransferDomain}
	hasTransfers := false

	rows := make([]models.CategorySummaryRow, 0, len(order))
	for _, category := range order {
		row := byCategory[category]
		if strings.HasPrefix(category, models.TransferPrefix) {
			hasTransfers = true
			transferRow.TotalDebit = transferRow.TotalDebit.Add(row.TotalDebit)
			transferRow.DebitCount += row.DebitCount
			transferRow.TotalCredit = transferRow.TotalCredit.Add(row.TotalCredit)
			transferRow.CreditCount += row.CreditCount
			continue
		}
		rows = append(rows, *row)
	}
	if hasTransfers {
		rows = append(rows, transferRow)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDebit.GreaterThan(rows[j].TotalDebit)
	})
	return rows
}

func accumulate(row *models.CategorySummaryRow, tx models.Transaction) {
	if currencyutils.IsPositive(tx.Debit) {
		row.TotalDebit = row.TotalDebit.Add(tx.Debit)
		row.DebitCount++
	}
	if currencyutils.IsPositive(tx.Credit) {
		row.TotalCredit = row.TotalCredit.Add(tx.Credit)
		row.CreditCount++
	}
}

// ByBroadCategory aggregates debit/credit totals and transaction counts per
// broad category.
func ByBroadCategory(transactions []models.Transaction) []models.BroadCategorySummaryRow {
	byBroad := make(map[string]*models.BroadCategorySummaryRow)
	order := []string{}

	for _, tx := range transactions {
		row, ok := byBroad[tx.BroadCategory]
		if !ok {
			row = &models.BroadCategorySummaryRow{BroadCategory: tx.BroadCategory}
			byBroad[tx.BroadCategory] = row
			order = append(order, tx.BroadCategory)
		}
		row.TotalDebits = row.TotalDebits.Add(tx.Debit)
		row.TotalCredits = row.TotalCredits.Add(tx.Credit)
		row.TransactionCount++
	}

	rows := make([]models.BroadCategorySummaryRow, 0, len(order))
	for _, broad := range order {
		row := byBroad[broad]
		row.NetAmount = row.TotalCredits.Sub(row.TotalDebits)
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDebits.GreaterThan(rows[j].TotalDebits)
	})
	return rows
}

// Portfolio computes true external cash flow. Transactions whose broad
// category is "Self Transfer" are excluded from both sides of the ledger:
// their amounts are dropped entirely, not netted, even if one leg of a pair
// is missing or malformed. Empty input yields an all-zero summary.
func Portfolio(transactions []models.Transaction) models.PortfolioSummary {
	s := models.PortfolioSummary{
		ExternalInflow:    decimal.Zero,
		ExternalOutflow:   decimal.Zero,
		NetExternalChange: decimal.Zero,
	}

	for _, tx := range transactions {
		s.TotalTransactions++
		if tx.BroadCategory == models.BroadSelfTransfer {
			s.InternalTransferTransactions++
			continue
		}
		s.ExternalTransactions++
		s.ExternalInflow = s.ExternalInflow.Add(tx.Credit)
		s.ExternalOutflow = s.ExternalOutflow.Add(tx.Debit)
	}

	s.NetExternalChange = s.ExternalInflow.Sub(s.ExternalOutflow)
	return s
}

// Overall computes whole-ledger totals with no self-transfer elimination.
func Overall(transactions []models.Transaction) models.OverallSummary {
	s := models.OverallSummary{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		NetChange:    decimal.Zero,
	}

	for _, tx := range transactions {
		s.TotalDebits = s.TotalDebits.Add(tx.Debit)
		s.TotalCredits = s.TotalCredits.Add(tx.Credit)
		if currencyutils.IsPositive(tx.Debit) {
			s.DebitCount++
		}
		if currencyutils.IsPositive(tx.Credit) {
			s.CreditCount++
		}
	}

	s.NetChange = s.TotalCredits.Sub(s.TotalDebits)
	return s
}

// TopSpending returns the first n category summary rows by total debit.
func TopSpending(transactions []models.Transaction, n int) []models.CategorySummaryRow {
	rows := ByCategory(transactions)
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
