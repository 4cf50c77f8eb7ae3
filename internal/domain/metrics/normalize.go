// Package metrics contém o normalizador de moeda e o motor de métricas.
// Todas as funções são puras: recebem o snapshot (ou um subconjunto) e nunca
// o modificam.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

// NormalizedRow é uma LedgerRow com o valor convertido para USD anexado.
// USD é nil quando não existe taxa FX para o par (month, currency) da linha.
type NormalizedRow struct {
	entity.LedgerRow
	USD *decimal.Decimal
}

type fxKey struct {
	month    string
	currency string
}

// FxTable indexa as taxas por (month, currency) para lookup exato.
type FxTable map[fxKey]decimal.Decimal

// NewFxTable constrói a tabela de lookup a partir das linhas de FX.
// Pela invariante de dados há no máximo uma taxa por par; em caso de
// duplicata a última linha vence.
func NewFxTable(rates []entity.FxRate) FxTable {
	table := make(FxTable, len(rates))
	for _, r := range rates {
		table[fxKey{month: r.Month, currency: r.Currency}] = r.RateToUSD
	}
	return table
}

// Lookup retorna a taxa para (month, currency), se existir.
func (t FxTable) Lookup(month, currency string) (decimal.Decimal, bool) {
	rate, ok := t[fxKey{month: month, currency: currency}]
	return rate, ok
}

// ToUSD converte cada linha para USD via lookup exato de (month, currency).
// Entrada vazia produz saída vazia (nunca falha); linha sem taxa sai com USD
// nil e o chamador decide como tolerar o valor ausente.
func ToUSD(rows []entity.LedgerRow, fx FxTable) []NormalizedRow {
	out := make([]NormalizedRow, 0, len(rows))
	for _, row := range rows {
		normalized := NormalizedRow{LedgerRow: row}
		if rate, ok := fx.Lookup(row.Month, row.Currency); ok {
			usd := row.Amount.Mul(rate)
			normalized.USD = &usd
		}
		out = append(out, normalized)
	}
	return out
}

// SumUSD soma os valores USD de um conjunto de linhas normalizadas.
// Linha com USD nil (taxa FX ausente) contribui zero para a soma, em vez de
// invalidar o agregado inteiro.
func SumUSD(rows []NormalizedRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row.USD != nil {
			total = total.Add(*row.USD)
		}
	}
	return total
}
