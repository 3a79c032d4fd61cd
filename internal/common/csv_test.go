package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsethi/finanalyzer/internal/models"
)

func TestReadWriteCSVFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	in := []models.Transaction{
		{
			Date:        "23-08-2025",
			Description: "SWIGGY LIMITED",
			Debit:       decimal.RequireFromString("223.50"),
			Category:    "Food & Dining",
		},
		{
			Date:        "24-08-2025",
			Description: "SALARY CREDIT",
			Credit:      decimal.NewFromInt(50000),
		},
	}

	require.NoError(t, WriteCSVFile(in, path))

	out, err := ReadCSVFile[models.Transaction](path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "SWIGGY LIMITED", out[0].Description)
	assert.True(t, in[0].Debit.Equal(out[0].Debit))
	assert.Equal(t, "Food & Dining", out[0].Category)
	assert.True(t, in[1].Credit.Equal(out[1].Credit))
}

func TestReadCSVFile_MissingFile(t *testing.T) {
	_, err := ReadCSVFile[models.Transaction](filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening CSV file")
}

func TestLoadStatementGroups(t *testing.T) {
	dir := t.TempDir()

	sbi := []models.Transaction{{Date: "23-08-2025", Description: "SWIGGY", Debit: decimal.NewFromInt(223)}}
	require.NoError(t, WriteCSVFile(sbi, filepath.Join(dir, "sbi_savings.csv")))

	hdfc := []models.Transaction{{Date: "24-08-2025", Description: "RENT", Debit: decimal.NewFromInt(15000)}}
	require.NoError(t, WriteCSVFile(hdfc, filepath.Join(dir, "hdfc_credit.csv")))

	// Non-CSV files and subdirectories are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	groups, err := LoadStatementGroups(dir)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	require.Len(t, groups["sbi_savings"], 1)
	assert.Equal(t, "sbi_savings.csv", groups["sbi_savings"][0].SourceFile)
	require.Len(t, groups["hdfc_credit"], 1)
	assert.Equal(t, "RENT", groups["hdfc_credit"][0].Description)
}

func TestLoadStatementGroups_NormalizesDatesAndYear(t *testing.T) {
	dir := t.TempDir()

	in := []models.Transaction{
		{Date: "2025-08-23", ValueDate: "2025-08-24", Description: "SWIGGY", Debit: decimal.NewFromInt(223)},
		{Date: "garbage", Description: "UNKNOWN", Debit: decimal.NewFromInt(1)},
		{Date: "23/08/2024", Description: "OLD", Year: "2023", Debit: decimal.NewFromInt(2)},
	}
	require.NoError(t, WriteCSVFile(in, filepath.Join(dir, "sbi_savings.csv")))

	groups, err := LoadStatementGroups(dir)
	require.NoError(t, err)
	require.Len(t, groups["sbi_savings"], 3)
	rows := groups["sbi_savings"]

	assert.Equal(t, "23-08-2025", rows[0].Date)
	assert.Equal(t, "24-08-2025", rows[0].ValueDate)
	assert.Equal(t, "2025", rows[0].Year)

	// An unparseable date survives untouched and yields no year.
	assert.Equal(t, "garbage", rows[1].Date)
	assert.Equal(t, "", rows[1].Year)

	// A year carried by the source file is never overwritten.
	assert.Equal(t, "23-08-2024", rows[2].Date)
	assert.Equal(t, "2023", rows[2].Year)
}

func TestLoadAlertGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	payload := `{
		"sbi": [
			{"date": "2025-08-23", "amount": "223.00", "merchant": "Swiggy", "transaction_type": "debit", "bank": "sbi", "subject": "Transaction alert"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	groups, err := LoadAlertGroups(path)
	require.NoError(t, err)
	require.Len(t, groups["sbi"], 1)
	assert.Equal(t, "Swiggy", groups["sbi"][0].Merchant)
	assert.Equal(t, "debit", groups["sbi"][0].Type)
}

func TestLoadAlertGroups_NumericAmounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	// Upstream alert parsers emit amounts as bare numbers as often as
	// strings; both shapes must load.
	payload := `{
		"hdfc": [
			{"date": "2025-08-23", "amount": 223.0, "merchant": "Swiggy", "transaction_type": "debit", "bank": "hdfc"},
			{"date": "2025-08-24", "amount": "500", "merchant": "Zomato", "transaction_type": "debit", "bank": "hdfc"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	groups, err := LoadAlertGroups(path)
	require.NoError(t, err)
	require.Len(t, groups["hdfc"], 2)
	assert.Equal(t, "223.0", groups["hdfc"][0].Amount)
	assert.Equal(t, "500", groups["hdfc"][1].Amount)
}

func TestLoadAlertGroups_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadAlertGroups(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing alerts file")
}
