package entity

import "github.com/shopspring/decimal"

// Valores indefinidos (divisão por zero, taxa FX ausente) são representados
// como ponteiros nil, nunca como sentinelas NaN, para que "zero" e
// "indefinido" permaneçam distinguíveis na formatação.

// RevenueVsBudget compara a receita real com a orçada para um mês, em USD.
type RevenueVsBudget struct {
	Month       string           `json:"month"`
	ActualUSD   decimal.Decimal  `json:"actual_usd"`
	BudgetUSD   decimal.Decimal  `json:"budget_usd"`
	VarianceUSD decimal.Decimal  `json:"variance_usd"`
	VariancePct *decimal.Decimal `json:"variance_pct,omitempty"`
}

// GrossMarginPoint é um ponto da série de margem bruta. GMPct é nil quando a
// receita do mês é zero ou o mês não tem linhas.
type GrossMarginPoint struct {
	Month string           `json:"month"`
	GMPct *decimal.Decimal `json:"gm_pct,omitempty"`
}

// OpexCategory é o total USD de uma categoria "Opex:<Sub>" em um mês.
type OpexCategory struct {
	AccountCategory string          `json:"account_category"`
	USD             decimal.Decimal `json:"usd"`
}

// EbitdaPoint carrega os agregados USD de um mês de Actuals.
// EBITDA = Revenue - COGS - OpexTotal, sempre exato.
type EbitdaPoint struct {
	Month     string          `json:"month"`
	EBITDA    decimal.Decimal `json:"ebitda"`
	OpexTotal decimal.Decimal `json:"opex_total"`
	Revenue   decimal.Decimal `json:"revenue"`
	COGS      decimal.Decimal `json:"cogs"`
}

// CashRunway resume o caixa atual e a pista de pouso financeira.
// RunwayMonths nil significa runway ilimitado (sem burn líquido).
// CashUSD nil significa que não há ponto de caixa para o mês mais recente.
type CashRunway struct {
	AsOf          string           `json:"as_of"`
	CashUSD       *decimal.Decimal `json:"cash_usd,omitempty"`
	AvgNetBurnUSD decimal.Decimal  `json:"avg_net_burn_usd"`
	RunwayMonths  *decimal.Decimal `json:"runway_months,omitempty"`
	Note          string           `json:"note"`
}
