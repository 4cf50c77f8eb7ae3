package entity

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func snapshotWithMonths(months ...string) *FinanceSnapshot {
	s := &FinanceSnapshot{}
	for _, m := range months {
		s.Actuals = append(s.Actuals, LedgerRow{Month: m, AccountCategory: "Revenue"})
	}
	return s
}

// TestActualMonths_DistinctAndSorted: duplicated and out-of-order rows still
// produce a distinct chronological list.
func TestActualMonths_DistinctAndSorted(t *testing.T) {
	s := snapshotWithMonths("2025-03", "2025-01", "2025-03", "2025-02", "2025-01")

	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, s.ActualMonths())
	assert.Equal(t, "2025-03", s.LatestActualMonth())
}

// TestLatestActualMonth_Empty: an empty snapshot has no latest month.
func TestLatestActualMonth_Empty(t *testing.T) {
	assert.Equal(t, "", (&FinanceSnapshot{}).LatestActualMonth())
}

// TestLastCashPoints: the tail of the chronological cash series, preserving
// the original slice.
func TestLastCashPoints(t *testing.T) {
	s := &FinanceSnapshot{Cash: []CashPoint{
		{Month: "2025-03", CashUSD: decimal.NewFromInt(300)},
		{Month: "2025-01", CashUSD: decimal.NewFromInt(100)},
		{Month: "2025-02", CashUSD: decimal.NewFromInt(200)},
	}}

	last := s.LastCashPoints(2)
	assert.Equal(t, 2, len(last))
	assert.Equal(t, "2025-02", last[0].Month)
	assert.Equal(t, "2025-03", last[1].Month)

	// A fatia original não é reordenada.
	assert.Equal(t, "2025-03", s.Cash[0].Month)

	all := s.LastCashPoints(10)
	assert.Equal(t, 3, len(all))
}
