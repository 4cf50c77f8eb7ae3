// Package interpreter classifica perguntas em linguagem natural e extrai
// referências de tempo (mês-alvo ou janela móvel). As regras são padrões
// fixos de palavras-chave; a ordem de avaliação é significativa porque os
// vocabulários se sobrepõem ("revenue" sozinho vs. "revenue vs budget").
package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Intent é a categoria fechada de uma pergunta classificada.
type Intent int

const (
	IntentHelp Intent = iota
	IntentRevenueVsBudget
	IntentGrossMarginTrend
	IntentOpexBreakdown
	IntentCashRunway
	IntentEbitdaTrend
)

// String implementa fmt.Stringer com os nomes canônicos das intents.
func (i Intent) String() string {
	switch i {
	case IntentRevenueVsBudget:
		return "revenue_vs_budget"
	case IntentGrossMarginTrend:
		return "gross_margin_trend"
	case IntentOpexBreakdown:
		return "opex_breakdown"
	case IntentCashRunway:
		return "cash_runway"
	case IntentEbitdaTrend:
		return "ebitda_trend"
	default:
		return "help"
	}
}

// MonthRefKind distingue as três formas de referência de mês em uma pergunta.
type MonthRefKind int

const (
	// MonthRefAbsent: nenhuma referência; o chamador usa o mês mais recente.
	MonthRefAbsent MonthRefKind = iota
	// MonthRefExact: mês completo "YYYY-MM".
	MonthRefExact
	// MonthRefPartial: apenas o nome do mês ("for June"); o chamador resolve
	// o ano escolhendo o mês mais recente dos dados com esse número.
	MonthRefPartial
)

// MonthRef é o resultado da extração de mês de uma pergunta.
type MonthRef struct {
	Kind     MonthRefKind
	Month    string // preenchido quando Kind == MonthRefExact
	MonthNum int    // 1..12, preenchido quando Kind == MonthRefPartial
}

var (
	runwayWordRegex = regexp.MustCompile(`\brunway\b`)

	monthNames = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

	// "June 2025", "jun 2025"
	monthYearRegex = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+([12][0-9]{3})\b`)
	// "2025-06" literal
	yearMonthRegex = regexp.MustCompile(`([12][0-9]{3})-(0[1-9]|1[0-2])`)
	// "for June" sem ano
	forMonthRegex = regexp.MustCompile(`\bfor\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*`)

	lastDigitsRegex  = regexp.MustCompile(`last\s+(\d+)\s+months?`)
	lastSpelledRegex = regexp.MustCompile(`last\s+(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+months?`)

	spelledNumbers = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
		"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	}
)

// ClassifyIntent classifica o texto em uma das seis intents. Primeira regra
// que casa vence; a avaliação é case-insensitive sobre o texto aparado.
func ClassifyIntent(text string) Intent {
	t := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(t, "cash runway") || runwayWordRegex.MatchString(t):
		return IntentCashRunway
	case strings.Contains(t, "revenue") &&
		(strings.Contains(t, "vs") || strings.Contains(t, "versus") || strings.Contains(t, "budget")):
		return IntentRevenueVsBudget
	case strings.Contains(t, "gross margin") || strings.Contains(t, "gm%") || strings.Contains(t, "gm %"):
		return IntentGrossMarginTrend
	case strings.Contains(t, "opex") || strings.Contains(t, "operating expenses"):
		return IntentOpexBreakdown
	case strings.Contains(t, "ebitda"):
		return IntentEbitdaTrend
	default:
		return IntentHelp
	}
}

// ExtractMonth extrai uma referência de mês do texto, na ordem:
// "June 2025" → exato; "2025-06" → exato; "for June" → parcial (só o número
// do mês); nada → ausente.
func ExtractMonth(text string) MonthRef {
	t := strings.ToLower(text)

	if m := monthYearRegex.FindStringSubmatch(t); m != nil {
		year, _ := strconv.Atoi(m[2])
		return MonthRef{
			Kind:  MonthRefExact,
			Month: fmt.Sprintf("%04d-%02d", year, monthNumber(m[1])),
		}
	}

	if m := yearMonthRegex.FindString(t); m != "" {
		return MonthRef{Kind: MonthRefExact, Month: m}
	}

	if m := forMonthRegex.FindStringSubmatch(t); m != nil {
		return MonthRef{Kind: MonthRefPartial, MonthNum: monthNumber(m[1])}
	}

	return MonthRef{Kind: MonthRefAbsent}
}

// ExtractWindow extrai uma janela "last N months" (dígitos ou por extenso,
// one..twelve). Retorna (0, false) quando não há janela no texto.
func ExtractWindow(text string) (int, bool) {
	t := strings.ToLower(text)

	if m := lastDigitsRegex.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	if m := lastSpelledRegex.FindStringSubmatch(t); m != nil {
		return spelledNumbers[m[1]], true
	}
	return 0, false
}

func monthNumber(abbrev string) int {
	for i, name := range monthNames {
		if name == abbrev {
			return i + 1
		}
	}
	return 0
}
