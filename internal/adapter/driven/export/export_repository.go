package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
	"github.com/dmarins/cfo-copilot-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportSnapshotToCSV exporta a tabela EBITDA-por-mês do snapshot para CSV.
func (r *ExportRepositoryImpl) ExportSnapshotToCSV(report *entity.SnapshotReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Month", "Revenue (USD)", "COGS (USD)", "Opex Total (USD)", "EBITDA (USD)",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, point := range report.Ebitda {
		record := []string{
			point.Month,
			point.Revenue.StringFixed(2),
			point.COGS.StringFixed(2),
			point.OpexTotal.StringFixed(2),
			point.EBITDA.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportSnapshotToJSON exporta o relatório completo para JSON.
func (r *ExportRepositoryImpl) ExportSnapshotToJSON(report *entity.SnapshotReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportSnapshotToPDF gera o snapshot em PDF: página 1 com receita vs
// orçamento e breakdown de Opex do mês mais recente, página 2 com runway e
// tendência de caixa, e uma página final com a última resposta da sessão,
// quando existir. Falha ao embutir um gráfico não é fatal: a seção é pulada e
// o restante do relatório é gerado.
func (r *ExportRepositoryImpl) ExportSnapshotToPDF(report *entity.SnapshotReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pageCount := 0

	drawHeader := func(title string) {
		pageCount++
		pdf.AddPage()
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  As of %s", report.AsOf)), "", 1, "L", true, 0, "")
		pdf.Ln(8)
	}

	drawSection := func(title string, content string) {
		content = cleanRichTags(content)
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(4)
	}

	drawFooter := func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by CFO Copilot | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pageCount)), "", 0, "R", false, 0, "")
	}

	// Página 1: Receita vs Orçamento + Opex do mês mais recente.
	drawHeader("CFO Copilot — Snapshot")

	variancePct := "n/a"
	if report.Revenue.VariancePct != nil {
		variancePct = report.Revenue.VariancePct.Mul(hundred).StringFixed(1) + "%"
	}
	revenueSummary := fmt.Sprintf("Actual: $%s | Budget: $%s | Var: $%s (%s)",
		report.Revenue.ActualUSD.StringFixed(2),
		report.Revenue.BudgetUSD.StringFixed(2),
		report.Revenue.VarianceUSD.StringFixed(2),
		variancePct,
	)
	drawSection("Revenue vs Budget", revenueSummary)
	r.embedChart(pdf, "revenue_chart", report.RevenueChartPNG, 120)

	var opexLines []string
	for _, category := range report.Opex {
		opexLines = append(opexLines, fmt.Sprintf("%s: $%s", category.AccountCategory, category.USD.StringFixed(2)))
	}
	if len(opexLines) == 0 {
		opexLines = append(opexLines, fmt.Sprintf("No Opex data for %s.", report.AsOf))
	}
	drawSection("Opex Breakdown", strings.Join(opexLines, "\n"))
	r.embedChart(pdf, "opex_chart", report.OpexChartPNG, 120)
	drawFooter()

	// Página 2: runway e tendência de caixa.
	drawHeader("Cash Position")

	cash := "n/a"
	if report.Runway.CashUSD != nil {
		cash = "$" + report.Runway.CashUSD.StringFixed(2)
	}
	runway := "unlimited"
	if report.Runway.RunwayMonths != nil {
		runway = report.Runway.RunwayMonths.StringFixed(1) + " months"
	}
	runwaySummary := fmt.Sprintf("Cash: %s\nAvg net burn (last 3 mo): $%s\nRunway: %s\n\n%s",
		cash,
		report.Runway.AvgNetBurnUSD.StringFixed(2),
		runway,
		report.Runway.Note,
	)
	drawSection("Cash Runway", runwaySummary)
	drawSection("Cash Trend (last 6 months)", "Month-end cash balance in USD.")
	r.embedChart(pdf, "cash_chart", report.CashChartPNG, 140)
	drawFooter()

	// Página final opcional: última resposta da sessão com seu gráfico.
	if report.LatestAnswer != "" {
		drawHeader("Latest Answer")
		drawSection("Answer", report.LatestAnswer)
		r.embedChart(pdf, "latest_chart", report.LatestChartPNG, 140)
		drawFooter()
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

var hundred = decimal.NewFromInt(100)

// embedChart embute um PNG no PDF. Bytes ausentes ou corrompidos são
// ignorados e o relatório segue sem a imagem. A validação acontece antes do
// registro: o gofpdf marca o documento inteiro como inválido ao registrar uma
// imagem corrompida.
func (r *ExportRepositoryImpl) embedChart(pdf *gofpdf.Fpdf, name string, data []byte, width float64) {
	if len(data) == 0 {
		return
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), width, 0, true, opts, 0, "")
	pdf.Ln(6)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
