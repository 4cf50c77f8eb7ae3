package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

func sampleReport() *entity.SnapshotReport {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	pct := d("-0.0539")

	return &entity.SnapshotReport{
		AsOf: "2025-06",
		Revenue: entity.RevenueVsBudget{
			Month:       "2025-06",
			ActualUSD:   d("1014896.00"),
			BudgetUSD:   d("1072687.68"),
			VarianceUSD: d("-57791.68"),
			VariancePct: &pct,
		},
		Opex: []entity.OpexCategory{
			{AccountCategory: "Opex:Payroll", USD: d("390000")},
			{AccountCategory: "Opex:Cloud", USD: d("96000")},
		},
		Ebitda: []entity.EbitdaPoint{
			{Month: "2025-05", Revenue: d("969100"), COGS: d("356000"), OpexTotal: d("551600"), EBITDA: d("61500")},
			{Month: "2025-06", Revenue: d("1014896"), COGS: d("371000"), OpexTotal: d("554320"), EBITDA: d("89576")},
		},
		Cash: []entity.CashPoint{
			{Month: "2025-05", CashUSD: d("10020000")},
			{Month: "2025-06", CashUSD: d("10120000")},
		},
		Runway: entity.CashRunway{
			AsOf:          "2025-06",
			AvgNetBurnUSD: decimal.Zero,
			Note:          "Profitable over the last 3 months (no net burn). Runway: N/A",
		},
	}
}

// TestExportSnapshotToCSV writes the EBITDA-by-month table and checks header
// and values.
func TestExportSnapshotToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportSnapshotToCSV(sampleReport(), "test-snapshot", dir)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	text := string(content)
	assert.True(t, strings.HasPrefix(text, "Month,Revenue (USD),COGS (USD),Opex Total (USD),EBITDA (USD)"))
	assert.True(t, strings.Contains(text, "2025-06,1014896.00,371000.00,554320.00,89576.00"))
}

// TestExportSnapshotToJSON writes a decodable report document.
func TestExportSnapshotToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportSnapshotToJSON(sampleReport(), "test-snapshot", dir)
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, "2025-06", decoded["as_of"])
}

// TestExportSnapshotToPDF writes a well-formed PDF file.
func TestExportSnapshotToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportSnapshotToPDF(sampleReport(), "test-snapshot", dir)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"), "file should start with the PDF signature")
}

// TestExportSnapshotToPDF_CorruptChart: broken chart bytes are skipped and the
// report still comes out.
func TestExportSnapshotToPDF_CorruptChart(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	report := sampleReport()
	report.RevenueChartPNG = []byte("definitely not a png")
	report.CashChartPNG = []byte{0x89, 'P', 'N', 'G', 0x00}

	path, err := repo.ExportSnapshotToPDF(report, "test-snapshot", dir)
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

// TestCleanRichTags strips pterm rich tags and ANSI escapes.
func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "warning text", cleanRichTags("[yellow]warning[/yellow] text"))
	assert.Equal(t, "plain", cleanRichTags("\x1B[31mplain\x1B[0m"))
}
