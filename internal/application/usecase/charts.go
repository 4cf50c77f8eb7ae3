package usecase

import (
	"fmt"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

// Construtores dos cinco pedidos de gráfico que acompanham as respostas.

func revenueChart(r entity.RevenueVsBudget) *entity.ChartRequest {
	return &entity.ChartRequest{
		Kind:   entity.ChartRevenueVsBudget,
		Title:  fmt.Sprintf("Revenue vs Budget — %s", r.Month),
		YLabel: "USD",
		Bars: []entity.ChartBar{
			{Label: "Actual", Value: r.ActualUSD.InexactFloat64()},
			{Label: "Budget", Value: r.BudgetUSD.InexactFloat64()},
		},
	}
}

func grossMarginChart(points []entity.GrossMarginPoint, window int) *entity.ChartRequest {
	req := &entity.ChartRequest{
		Kind:   entity.ChartGrossMarginLine,
		Title:  fmt.Sprintf("Gross Margin %% — last %d months", window),
		YLabel: "GM %",
	}
	for _, p := range points {
		point := entity.ChartPoint{Label: p.Month}
		if p.GMPct != nil {
			point.Value = p.GMPct.InexactFloat64() * 100
			point.Defined = true
		}
		req.Points = append(req.Points, point)
	}
	return req
}

func opexChart(month string, categories []entity.OpexCategory) *entity.ChartRequest {
	req := &entity.ChartRequest{
		Kind:   entity.ChartOpexBreakdown,
		Title:  fmt.Sprintf("Opex Breakdown — %s", month),
		YLabel: "USD",
	}
	for _, c := range categories {
		req.Bars = append(req.Bars, entity.ChartBar{
			Label: c.AccountCategory,
			Value: c.USD.InexactFloat64(),
		})
	}
	return req
}

func cashChart(points []entity.CashPoint) *entity.ChartRequest {
	req := &entity.ChartRequest{
		Kind:   entity.ChartCashTrendLine,
		Title:  fmt.Sprintf("Cash Trend — last %d months", len(points)),
		YLabel: "USD",
	}
	for _, p := range points {
		req.Points = append(req.Points, entity.ChartPoint{
			Label:   p.Month,
			Value:   p.CashUSD.InexactFloat64(),
			Defined: true,
		})
	}
	return req
}

func ebitdaChart(points []entity.EbitdaPoint) *entity.ChartRequest {
	req := &entity.ChartRequest{
		Kind:   entity.ChartEbitdaLine,
		Title:  fmt.Sprintf("EBITDA — last %d months", len(points)),
		YLabel: "USD",
	}
	for _, p := range points {
		req.Points = append(req.Points, entity.ChartPoint{
			Label:   p.Month,
			Value:   p.EBITDA.InexactFloat64(),
			Defined: true,
		})
	}
	return req
}
