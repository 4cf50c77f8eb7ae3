package entity

// SnapshotReport é o pacote de dados do export: KPIs do mês mais recente,
// séries de tendência e os gráficos já renderizados como PNG. Os bytes de
// imagem ficam fora do JSON; falha ao embutir uma imagem nunca é fatal para o
// relatório.
type SnapshotReport struct {
	AsOf    string           `json:"as_of"`
	Revenue RevenueVsBudget  `json:"revenue_vs_budget"`
	Opex    []OpexCategory   `json:"opex_breakdown"`
	Ebitda  []EbitdaPoint    `json:"ebitda_by_month"`
	Cash    []CashPoint      `json:"cash_trend"`
	Runway  CashRunway      `json:"cash_runway"`

	RevenueChartPNG []byte `json:"-"`
	OpexChartPNG    []byte `json:"-"`
	CashChartPNG    []byte `json:"-"`

	// Última resposta da sessão, quando existir (vira a página final do PDF).
	LatestAnswer   string `json:"latest_answer,omitempty"`
	LatestChartPNG []byte `json:"-"`
}
