package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// LedgerRow representa uma linha contábil mensal (actuals ou budget).
type LedgerRow struct {
	Month           string          `json:"month"`
	AccountCategory string          `json:"account_category"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

// FxRate stores the conversion rate to USD for a (month, currency) pair.
// Invariante: no máximo uma taxa por par (month, currency).
type FxRate struct {
	Month     string          `json:"month"`
	Currency  string          `json:"currency"`
	RateToUSD decimal.Decimal `json:"rate_to_usd"`
}

// CashPoint representa o saldo de caixa em USD no fim de um mês.
type CashPoint struct {
	Month   string          `json:"month"`
	CashUSD decimal.Decimal `json:"cash_usd"`
}

// FinanceSnapshot is the read-only aggregate of all input tables, loaded once
// per session and never mutated afterwards. Month keys use the canonical
// "YYYY-MM" form, so chronological order is lexicographic order.
type FinanceSnapshot struct {
	Actuals []LedgerRow `json:"actuals"`
	Budget  []LedgerRow `json:"budget"`
	Fx      []FxRate    `json:"fx"`
	Cash    []CashPoint `json:"cash"`
}

// ActualMonths retorna os meses distintos presentes em Actuals, em ordem
// cronológica.
func (s *FinanceSnapshot) ActualMonths() []string {
	return distinctSortedMonths(s.Actuals)
}

// LatestActualMonth retorna o mês mais recente presente em Actuals, ou ""
// quando não há dados.
func (s *FinanceSnapshot) LatestActualMonth() string {
	months := s.ActualMonths()
	if len(months) == 0 {
		return ""
	}
	return months[len(months)-1]
}

// CashMonths retorna os meses distintos presentes em Cash, em ordem
// cronológica.
func (s *FinanceSnapshot) CashMonths() []string {
	seen := map[string]bool{}
	var months []string
	for _, p := range s.Cash {
		if !seen[p.Month] {
			seen[p.Month] = true
			months = append(months, p.Month)
		}
	}
	sort.Strings(months)
	return months
}

// LastCashPoints retorna os últimos n pontos de caixa em ordem cronológica.
func (s *FinanceSnapshot) LastCashPoints(n int) []CashPoint {
	points := make([]CashPoint, len(s.Cash))
	copy(points, s.Cash)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	if len(points) > n {
		points = points[len(points)-n:]
	}
	return points
}

func distinctSortedMonths(rows []LedgerRow) []string {
	seen := map[string]bool{}
	var months []string
	for _, r := range rows {
		if !seen[r.Month] {
			seen[r.Month] = true
			months = append(months, r.Month)
		}
	}
	sort.Strings(months)
	return months
}
