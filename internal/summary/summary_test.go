package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsethi/finanalyzer/internal/models"
)

func tx(category string, debit, credit int64) models.Transaction {
	return models.Transaction{
		Category: category,
		Debit:    decimal.NewFromInt(debit),
		Credit:   decimal.NewFromInt(credit),
	}
}

func TestByCategory_GroupingAndCounts(t *testing.T) {
	transactions := []models.Transaction{
		tx("Food & Dining", 250, 0),
		tx("Food & Dining", 150, 0),
		tx("Salary", 0, 90000),
		tx("Food & Dining", 0, 50), // refund, counts on the credit side only
	}

	rows := ByCategory(transactions)
	require.Len(t, rows, 2)

	// Ordered by total debit descending.
	assert.Equal(t, "Food & Dining", rows[0].Category)
	assert.True(t, rows[0].TotalDebit.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 2, rows[0].DebitCount)
	assert.True(t, rows[0].TotalCredit.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, rows[0].CreditCount)

	assert.Equal(t, "Salary", rows[1].Category)
	assert.Equal(t, 0, rows[1].DebitCount)
	assert.Equal(t, 1, rows[1].CreditCount)
}

func TestByCategory_TransferConsolidation(t *testing.T) {
	transactions := []models.Transaction{
		tx("UPI-Travel-Cab Service", 300, 0),
		tx("UPI-Shopping-E-commerce", 700, 0),
		tx("UPI-Others", 0, 120),
		tx("Salary", 0, 90000),
	}

	rows := ByCategory(transactions)
	require.Len(t, rows, 2)

	// All transfer sub-category rows are replaced by one consolidated row.
	assert.Equal(t, models.TransferDomain, rows[0].Category)
	assert.True(t, rows[0].TotalDebit.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 2, rows[0].DebitCount)
	assert.True(t, rows[0].TotalCredit.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 1, rows[0].CreditCount)

	assert.Equal(t, "Salary", rows[1].Category)
}

func TestByCategory_Idempotent(t *testing.T) {
	transactions := []models.Transaction{
		tx("UPI-Travel-Cab Service", 300, 0),
		tx("Salary", 0, 90000),
		tx("Food & Dining", 250, 0),
	}

	first := ByCategory(transactions)
	second := ByCategory(transactions)
	assert.Equal(t, first, second)
}

func TestByCategory_EmptyInput(t *testing.T) {
	assert.Empty(t, ByCategory(nil))
}

func TestByBroadCategory(t *testing.T) {
	transactions := []models.Transaction{
		{BroadCategory: "Shopping & Retail", Debit: decimal.NewFromInt(500)},
		{BroadCategory: "Shopping & Retail", Debit: decimal.NewFromInt(300)},
		{BroadCategory: models.BroadIncome, Credit: decimal.NewFromInt(90000)},
	}

	rows := ByBroadCategory(transactions)
	require.Len(t, rows, 2)

	assert.Equal(t, "Shopping & Retail", rows[0].BroadCategory)
	assert.Equal(t, 2, rows[0].TransactionCount)
	assert.True(t, rows[0].NetAmount.Equal(decimal.NewFromInt(-800)))

	assert.Equal(t, models.BroadIncome, rows[1].BroadCategory)
	assert.True(t, rows[1].NetAmount.Equal(decimal.NewFromInt(90000)))
}

func TestPortfolio_SelfTransferElimination(t *testing.T) {
	// One internal transfer pair (credit 500 on account A, debit 500 on
	// account B) plus one external grocery debit of 100. The 500/500 pair
	// must contribute nothing to either side.
	transactions := []models.Transaction{
		{BroadCategory: models.BroadSelfTransfer, Credit: decimal.NewFromInt(500)},
		{BroadCategory: models.BroadSelfTransfer, Debit: decimal.NewFromInt(500)},
		{BroadCategory: "Food & Dining", Debit: decimal.NewFromInt(100)},
	}

	s := Portfolio(transactions)
	assert.Equal(t, 3, s.TotalTransactions)
	assert.Equal(t, 1, s.ExternalTransactions)
	assert.Equal(t, 2, s.InternalTransferTransactions)
	assert.True(t, s.ExternalInflow.IsZero())
	assert.True(t, s.ExternalOutflow.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.NetExternalChange.Equal(decimal.NewFromInt(-100)))
}

func TestPortfolio_DroppedNotNetted(t *testing.T) {
	// A lone internal-transfer leg with no counterpart must still be
	// dropped entirely, not pushed onto either external side.
	transactions := []models.Transaction{
		{BroadCategory: models.BroadSelfTransfer, Debit: decimal.NewFromInt(750)},
		{BroadCategory: "Salary", Credit: decimal.NewFromInt(1000)},
	}

	s := Portfolio(transactions)
	assert.True(t, s.ExternalOutflow.IsZero())
	assert.True(t, s.ExternalInflow.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.NetExternalChange.Equal(decimal.NewFromInt(1000)))

	// Removing the internal leg must not change the external totals.
	without := Portfolio(transactions[1:])
	assert.True(t, s.ExternalInflow.Equal(without.ExternalInflow))
	assert.True(t, s.ExternalOutflow.Equal(without.ExternalOutflow))
}

func TestPortfolio_EmptyInput(t *testing.T) {
	s := Portfolio(nil)
	assert.Equal(t, 0, s.TotalTransactions)
	assert.True(t, s.ExternalInflow.IsZero())
	assert.True(t, s.ExternalOutflow.IsZero())
	assert.True(t, s.NetExternalChange.IsZero())
}

func TestOverall(t *testing.T) {
	transactions := []models.Transaction{
		tx("A", 100, 0),
		tx("B", 0, 400),
		tx("C", 50, 0),
	}

	s := Overall(transactions)
	assert.True(t, s.TotalDebits.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.TotalCredits.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.NetChange.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, s.DebitCount)
	assert.Equal(t, 1, s.CreditCount)
}

func TestTopSpending(t *testing.T) {
	transactions := []models.Transaction{
		tx("A", 100, 0),
		tx("B", 400, 0),
		tx("C", 50, 0),
	}

	rows := TopSpending(transactions, 2)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Category)
	assert.Equal(t, "A", rows[1].Category)
}
