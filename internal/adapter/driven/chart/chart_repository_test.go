package chart

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// TestRenderPNG_BarChart renders a revenue comparison and checks the output
// really is a PNG.
func TestRenderPNG_BarChart(t *testing.T) {
	repo := NewChartRepository()

	png, err := repo.RenderPNG(&entity.ChartRequest{
		Kind:   entity.ChartRevenueVsBudget,
		Title:  "Revenue vs Budget — 2025-06",
		YLabel: "USD",
		Bars: []entity.ChartBar{
			{Label: "Actual", Value: 1014896},
			{Label: "Budget", Value: 1072688},
		},
	})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should start with the PNG magic bytes")
}

// TestRenderPNG_LineChart renders a cash trend line.
func TestRenderPNG_LineChart(t *testing.T) {
	repo := NewChartRepository()

	png, err := repo.RenderPNG(&entity.ChartRequest{
		Kind:   entity.ChartCashTrendLine,
		Title:  "Cash Trend",
		YLabel: "USD",
		Points: []entity.ChartPoint{
			{Label: "2025-04", Value: 9950000, Defined: true},
			{Label: "2025-05", Value: 10020000, Defined: true},
			{Label: "2025-06", Value: 10120000, Defined: true},
		},
	})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

// TestRenderPNG_UndefinedPointsSkipped: undefined points do not become zeros,
// and a line needs at least two defined points.
func TestRenderPNG_UndefinedPointsSkipped(t *testing.T) {
	repo := NewChartRepository()

	_, err := repo.RenderPNG(&entity.ChartRequest{
		Kind:  entity.ChartGrossMarginLine,
		Title: "Gross Margin %",
		Points: []entity.ChartPoint{
			{Label: "2025-05", Value: 63.3, Defined: true},
			{Label: "2025-06", Defined: false},
		},
	})
	assert.Error(t, err, "one defined point is not enough for a line")
}

// TestRenderPNG_InvalidRequests covers the nil, empty and unknown-kind cases.
func TestRenderPNG_InvalidRequests(t *testing.T) {
	repo := NewChartRepository()

	_, err := repo.RenderPNG(nil)
	assert.Error(t, err)

	_, err = repo.RenderPNG(&entity.ChartRequest{Kind: entity.ChartOpexBreakdown, Title: "Opex"})
	assert.Error(t, err, "bar chart without bars must fail")

	_, err = repo.RenderPNG(&entity.ChartRequest{Kind: "pie", Title: "??"})
	assert.Error(t, err)
}
