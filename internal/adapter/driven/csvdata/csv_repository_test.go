package csvdata

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/shared/types"
)

func writeDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		assert.NoError(t, err)
	}
	return dir
}

func validDataDir(t *testing.T) string {
	return writeDataDir(t, map[string]string{
		"actuals.csv": "month,account_category,amount,currency\n" +
			"2025-06,Revenue,650000.00,USD\n" +
			"2025-06,Revenue,325800.00,EUR\n" +
			"2025-06,COGS,371000.00,USD\n" +
			"2025-06,Opex:Payroll,390000.00,USD\n",
		"budget.csv": "month,account_category,amount,currency\n" +
			"2025-06,Revenue,680000.00,USD\n",
		"fx.csv": "month,currency,rate_to_usd\n" +
			"2025-06,USD,1.00\n" +
			"2025-06,EUR,1.12\n",
		"cash.csv": "month,cash_usd\n" +
			"2025-06,10120000.00\n",
	})
}

// TestLoadSnapshot_ReadsAllTables verifies the four tables land in the
// snapshot with exact decimal values.
func TestLoadSnapshot_ReadsAllTables(t *testing.T) {
	repo := NewCSVFinanceRepository()

	snapshot, err := repo.LoadSnapshot(context.Background(), validDataDir(t))
	assert.NoError(t, err)

	assert.Equal(t, 4, len(snapshot.Actuals))
	assert.Equal(t, 1, len(snapshot.Budget))
	assert.Equal(t, 2, len(snapshot.Fx))
	assert.Equal(t, 1, len(snapshot.Cash))

	assert.Equal(t, "2025-06", snapshot.Actuals[0].Month)
	assert.Equal(t, "Revenue", snapshot.Actuals[0].AccountCategory)
	assert.Equal(t, "USD", snapshot.Actuals[0].Currency)
	assert.True(t, snapshot.Actuals[0].Amount.Equal(decimal.RequireFromString("650000.00")))
	assert.True(t, snapshot.Fx[1].RateToUSD.Equal(decimal.RequireFromString("1.12")))
	assert.True(t, snapshot.Cash[0].CashUSD.Equal(decimal.RequireFromString("10120000.00")))
}

// TestLoadSnapshot_MissingDir maps a nonexistent directory to the typed error.
func TestLoadSnapshot_MissingDir(t *testing.T) {
	repo := NewCSVFinanceRepository()

	_, err := repo.LoadSnapshot(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.IsError(t, err, types.ErrDataDirNotFound)
}

// TestLoadSnapshot_MissingTable: all four tables are required.
func TestLoadSnapshot_MissingTable(t *testing.T) {
	dir := validDataDir(t)
	assert.NoError(t, os.Remove(filepath.Join(dir, "cash.csv")))

	repo := NewCSVFinanceRepository()
	_, err := repo.LoadSnapshot(context.Background(), dir)
	assert.Error(t, err)
}

// TestLoadSnapshot_InvalidAmount: a bad numeric cell fails with the file name
// and line number in the message.
func TestLoadSnapshot_InvalidAmount(t *testing.T) {
	dir := validDataDir(t)
	bad := "month,account_category,amount,currency\n2025-06,Revenue,abc,USD\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "actuals.csv"), []byte(bad), 0644))

	repo := NewCSVFinanceRepository()
	_, err := repo.LoadSnapshot(context.Background(), dir)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "actuals.csv"), "error was: %s", err)
	assert.True(t, strings.Contains(err.Error(), "line 2"), "error was: %s", err)
}

// TestLoadSnapshot_WrongColumnCount: the CSV reader enforces the schema width.
func TestLoadSnapshot_WrongColumnCount(t *testing.T) {
	dir := validDataDir(t)
	bad := "month,cash_usd\n2025-06,10120000.00,extra\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "cash.csv"), []byte(bad), 0644))

	repo := NewCSVFinanceRepository()
	_, err := repo.LoadSnapshot(context.Background(), dir)
	assert.Error(t, err)
}
