package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

const (
	categoryRevenue = "Revenue"
	categoryCOGS    = "COGS"
	opexPrefix      = "Opex:"

	// Meses considerados no cálculo do burn médio.
	burnWindowMonths = 3
)

// NoBurnNote é a mensagem fixa usada quando os últimos meses foram lucrativos.
const NoBurnNote = "Profitable over the last 3 months (no net burn). Runway: N/A"

// RevenueVsBudget compara receita real e orçada de um mês, normalizadas para
// USD. VariancePct é nil quando o orçamento do mês é zero.
func RevenueVsBudget(snap *entity.FinanceSnapshot, month string) entity.RevenueVsBudget {
	fx := NewFxTable(snap.Fx)

	actualUSD := SumUSD(ToUSD(filterRows(snap.Actuals, month, categoryRevenue), fx))
	budgetUSD := SumUSD(ToUSD(filterRows(snap.Budget, month, categoryRevenue), fx))
	variance := actualUSD.Sub(budgetUSD)

	result := entity.RevenueVsBudget{
		Month:       month,
		ActualUSD:   actualUSD,
		BudgetUSD:   budgetUSD,
		VarianceUSD: variance,
	}
	if !budgetUSD.IsZero() {
		pct := variance.Div(budgetUSD)
		result.VariancePct = &pct
	}
	return result
}

// GrossMarginTrend calcula (Revenue - COGS) / Revenue para exatamente os meses
// pedidos, na ordem pedida. Meses sem linhas ou com receita zero aparecem com
// GMPct nil; o tamanho da saída é sempre len(months).
func GrossMarginTrend(snap *entity.FinanceSnapshot, months []string) []entity.GrossMarginPoint {
	fx := NewFxTable(snap.Fx)

	out := make([]entity.GrossMarginPoint, 0, len(months))
	for _, month := range months {
		revenue := SumUSD(ToUSD(filterRows(snap.Actuals, month, categoryRevenue), fx))
		cogs := SumUSD(ToUSD(filterRows(snap.Actuals, month, categoryCOGS), fx))

		point := entity.GrossMarginPoint{Month: month}
		if !revenue.IsZero() {
			pct := revenue.Sub(cogs).Div(revenue)
			point.GMPct = &pct
		}
		out = append(out, point)
	}
	return out
}

// OpexBreakdown soma por categoria as linhas "Opex:*" do mês, em USD, e
// retorna em ordem decrescente de valor. Sem linhas, retorna fatia vazia.
// Empates preservam a ordem de primeira aparição (sort estável).
func OpexBreakdown(snap *entity.FinanceSnapshot, month string) []entity.OpexCategory {
	fx := NewFxTable(snap.Fx)

	totals := map[string]decimal.Decimal{}
	var order []string
	for _, row := range ToUSD(snap.Actuals, fx) {
		if row.Month != month || !strings.HasPrefix(row.AccountCategory, opexPrefix) {
			continue
		}
		if _, ok := totals[row.AccountCategory]; !ok {
			order = append(order, row.AccountCategory)
		}
		if row.USD != nil {
			totals[row.AccountCategory] = totals[row.AccountCategory].Add(*row.USD)
		} else {
			totals[row.AccountCategory] = totals[row.AccountCategory].Add(decimal.Zero)
		}
	}

	out := make([]entity.OpexCategory, 0, len(order))
	for _, category := range order {
		out = append(out, entity.OpexCategory{AccountCategory: category, USD: totals[category]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].USD.GreaterThan(out[j].USD)
	})
	return out
}

// EbitdaByMonth agrega Actuals por mês, em ordem cronológica, com uma linha
// por mês distinto. Categoria ausente conta como zero, nunca como indefinida.
func EbitdaByMonth(snap *entity.FinanceSnapshot) []entity.EbitdaPoint {
	fx := NewFxTable(snap.Fx)
	months := snap.ActualMonths()

	byMonth := map[string]*entity.EbitdaPoint{}
	for _, month := range months {
		byMonth[month] = &entity.EbitdaPoint{Month: month}
	}

	for _, row := range ToUSD(snap.Actuals, fx) {
		point := byMonth[row.Month]
		if point == nil || row.USD == nil {
			continue
		}
		switch {
		case row.AccountCategory == categoryRevenue:
			point.Revenue = point.Revenue.Add(*row.USD)
		case row.AccountCategory == categoryCOGS:
			point.COGS = point.COGS.Add(*row.USD)
		case strings.HasPrefix(row.AccountCategory, opexPrefix):
			point.OpexTotal = point.OpexTotal.Add(*row.USD)
		}
	}

	out := make([]entity.EbitdaPoint, 0, len(months))
	for _, month := range months {
		point := byMonth[month]
		point.EBITDA = point.Revenue.Sub(point.COGS).Sub(point.OpexTotal)
		out = append(out, *point)
	}
	return out
}

// CashRunway calcula o runway: caixa do mês mais recente dividido pelo burn
// líquido médio dos 3 últimos meses de Actuals. Apenas prejuízo conta como
// burn; meses lucrativos contribuem zero, nunca burn negativo. Burn médio
// zero produz RunwayMonths nil (ilimitado) com a nota fixa de lucratividade.
func CashRunway(snap *entity.FinanceSnapshot) entity.CashRunway {
	result := entity.CashRunway{AvgNetBurnUSD: decimal.Zero}

	cashMonths := snap.CashMonths()
	if len(cashMonths) > 0 {
		result.AsOf = cashMonths[len(cashMonths)-1]
		for _, p := range snap.Cash {
			if p.Month == result.AsOf {
				cash := p.CashUSD
				result.CashUSD = &cash
				break
			}
		}
	}

	ebitda := EbitdaByMonth(snap)
	if len(ebitda) > burnWindowMonths {
		ebitda = ebitda[len(ebitda)-burnWindowMonths:]
	}

	if len(ebitda) > 0 {
		totalBurn := decimal.Zero
		for _, point := range ebitda {
			if point.EBITDA.IsNegative() {
				totalBurn = totalBurn.Add(point.EBITDA.Neg())
			}
		}
		result.AvgNetBurnUSD = totalBurn.Div(decimal.NewFromInt(int64(len(ebitda))))
	}

	if result.AvgNetBurnUSD.IsZero() {
		result.Note = NoBurnNote
		return result
	}

	if result.CashUSD != nil {
		runway := result.CashUSD.Div(result.AvgNetBurnUSD)
		result.RunwayMonths = &runway
		result.Note = fmt.Sprintf("~%s months of runway", runway.StringFixed(1))
	} else {
		result.Note = "Cash balance unknown for the latest month"
	}
	return result
}

// filterRows seleciona as linhas de um mês com categoria exata.
func filterRows(rows []entity.LedgerRow, month, category string) []entity.LedgerRow {
	var out []entity.LedgerRow
	for _, row := range rows {
		if row.Month == month && row.AccountCategory == category {
			out = append(out, row)
		}
	}
	return out
}
