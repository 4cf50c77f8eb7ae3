package entity

// ChartKind identifica um dos cinco gráficos que o copilot sabe pedir.
type ChartKind string

const (
	ChartRevenueVsBudget ChartKind = "revenue_vs_budget_bar"
	ChartGrossMarginLine ChartKind = "gross_margin_trend_line"
	ChartOpexBreakdown   ChartKind = "opex_breakdown_bar"
	ChartCashTrendLine   ChartKind = "cash_trend_line"
	ChartEbitdaLine      ChartKind = "ebitda_trend_line"
)

// ChartBar represents a single labeled bar for bar charts.
type ChartBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartPoint represents a single data point for line charts. Defined=false
// marca um ponto indefinido (ex.: margem sem receita), que o renderizador pula.
type ChartPoint struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// ChartRequest é o pedido de gráfico que acompanha uma resposta. Gráficos de
// barra preenchem Bars; gráficos de linha preenchem Points.
type ChartRequest struct {
	Kind   ChartKind    `json:"kind"`
	Title  string       `json:"title"`
	YLabel string       `json:"y_label,omitempty"`
	Bars   []ChartBar   `json:"bars,omitempty"`
	Points []ChartPoint `json:"points,omitempty"`
}

// Answer é a resposta final de uma pergunta: texto formatado e zero-ou-um
// pedido de gráfico.
type Answer struct {
	Intent string        `json:"intent"`
	Text   string        `json:"text"`
	Chart  *ChartRequest `json:"chart,omitempty"`
}
