package metrics

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestToUSD_PreservesRowCount verifies that normalization never drops or adds
// rows and attaches a USD value where a rate exists.
func TestToUSD_PreservesRowCount(t *testing.T) {
	rows := []entity.LedgerRow{
		{Month: "2025-06", AccountCategory: "Revenue", Amount: usd("650000"), Currency: "USD"},
		{Month: "2025-06", AccountCategory: "Revenue", Amount: usd("325800"), Currency: "EUR"},
	}
	fx := NewFxTable([]entity.FxRate{
		{Month: "2025-06", Currency: "USD", RateToUSD: usd("1.00")},
		{Month: "2025-06", Currency: "EUR", RateToUSD: usd("1.12")},
	})

	out := ToUSD(rows, fx)
	assert.Equal(t, len(rows), len(out))
	assert.True(t, out[0].USD != nil, "USD row should have a value")
	assert.True(t, out[0].USD.Equal(usd("650000")))
	assert.True(t, out[1].USD.Equal(usd("364896")))
}

// TestToUSD_EmptyInput verifies the empty-in/empty-out contract: no error, a
// typed empty result.
func TestToUSD_EmptyInput(t *testing.T) {
	out := ToUSD(nil, NewFxTable(nil))
	assert.True(t, out != nil, "output should be a non-nil empty slice")
	assert.Equal(t, 0, len(out))
}

// TestToUSD_MissingRate verifies that a missing (month, currency) rate leaves
// the row's USD nil and that sums treat the missing value as zero.
func TestToUSD_MissingRate(t *testing.T) {
	rows := []entity.LedgerRow{
		{Month: "2025-06", AccountCategory: "Revenue", Amount: usd("100"), Currency: "USD"},
		{Month: "2025-06", AccountCategory: "Revenue", Amount: usd("200"), Currency: "BRL"},
	}
	fx := NewFxTable([]entity.FxRate{
		{Month: "2025-06", Currency: "USD", RateToUSD: usd("1.00")},
	})

	out := ToUSD(rows, fx)
	assert.Equal(t, 2, len(out))
	assert.True(t, out[0].USD != nil)
	assert.True(t, out[1].USD == nil, "row without a rate should have nil USD")

	// A linha sem taxa contribui zero para a soma.
	assert.True(t, SumUSD(out).Equal(usd("100")))
}

// TestFxTable_Lookup verifies exact-match lookup semantics.
func TestFxTable_Lookup(t *testing.T) {
	fx := NewFxTable([]entity.FxRate{
		{Month: "2025-06", Currency: "EUR", RateToUSD: usd("1.12")},
	})

	rate, ok := fx.Lookup("2025-06", "EUR")
	assert.True(t, ok)
	assert.True(t, rate.Equal(usd("1.12")))

	_, ok = fx.Lookup("2025-05", "EUR")
	assert.False(t, ok, "lookup must not fall back to other months")
}
