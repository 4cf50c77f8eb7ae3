package usecase

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

// Contrato de formatação das respostas: valores USD com milhares agrupados e
// zero casas decimais ("$1,014,896"); percentuais com uma casa ("-5.4%");
// runway com uma casa em meses, ou "∞" quando não há burn.

// formatUSD formata um valor em dólares com milhares agrupados, sem centavos.
// O agrupamento opera sobre o inteiro exato do arredondamento; valores acima
// de 2^53 não perdem precisão.
func formatUSD(v decimal.Decimal) string {
	return "$" + humanize.BigComma(v.Round(0).BigInt())
}

// formatPct formata uma razão como percentual com uma casa decimal.
// Razões indefinidas (ponteiro nil) imprimem "n/a".
func formatPct(p *decimal.Decimal) string {
	if p == nil {
		return "n/a"
	}
	return p.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func formatRevenueVsBudget(r entity.RevenueVsBudget) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Revenue vs Budget for %s:\n", r.Month)
	fmt.Fprintf(&b, "• Actual: %s\n", formatUSD(r.ActualUSD))
	fmt.Fprintf(&b, "• Budget: %s\n", formatUSD(r.BudgetUSD))
	fmt.Fprintf(&b, "• Variance: %s (%s)", formatUSD(r.VarianceUSD), formatPct(r.VariancePct))
	return b.String()
}

func formatGrossMarginTrend(points []entity.GrossMarginPoint, window int) string {
	lines := []string{fmt.Sprintf("Gross Margin %% (last %d months):", window)}
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("• %s: %s", p.Month, formatPct(p.GMPct)))
	}
	return strings.Join(lines, "\n")
}

func formatOpexBreakdown(month string, categories []entity.OpexCategory) string {
	lines := []string{fmt.Sprintf("Opex breakdown — %s:", month)}
	for _, c := range categories {
		// Exibe só o nome da subcategoria, sem o prefixo "Opex:".
		name := c.AccountCategory
		if idx := strings.Index(name, ":"); idx >= 0 {
			name = name[idx+1:]
		}
		lines = append(lines, fmt.Sprintf("• %s: %s", name, formatUSD(c.USD)))
	}
	return strings.Join(lines, "\n")
}

func formatCashRunway(cr entity.CashRunway) string {
	cash := "n/a"
	if cr.CashUSD != nil {
		cash = formatUSD(*cr.CashUSD)
	}
	runway := "∞"
	if cr.RunwayMonths != nil {
		runway = cr.RunwayMonths.StringFixed(1) + " months"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cash runway as of %s:\n", cr.AsOf)
	fmt.Fprintf(&b, "• Cash: %s\n", cash)
	fmt.Fprintf(&b, "• Avg net burn (last 3 mo): %s\n", formatUSD(cr.AvgNetBurnUSD))
	fmt.Fprintf(&b, "• Runway: %s\n", runway)
	b.WriteString(cr.Note)
	return b.String()
}

func formatEbitdaTrend(points []entity.EbitdaPoint) string {
	lines := []string{fmt.Sprintf("EBITDA (last %d months):", len(points))}
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("• %s: %s", p.Month, formatUSD(p.EBITDA)))
	}
	return strings.Join(lines, "\n")
}

const helpText = `I can answer questions like:
• What was June 2025 revenue vs budget in USD?
• Show Gross Margin % trend for the last 3 months.
• Break down Opex by category for June 2025.
• What is our cash runway right now?

Try including a month (e.g., 'June 2025') or a relative window (e.g., 'last 3 months').`
