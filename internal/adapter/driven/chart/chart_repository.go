package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
	"github.com/dmarins/cfo-copilot-go/internal/domain/repository"
)

// ChartRepositoryImpl implementa o ChartRepository com go-chart.
type ChartRepositoryImpl struct{}

// NewChartRepository cria uma nova implementação do ChartRepository.
func NewChartRepository() repository.ChartRepository {
	return &ChartRepositoryImpl{}
}

// RenderPNG renderiza o pedido de gráfico como PNG: barras para os tipos de
// comparação/breakdown, linha para as tendências. Pontos indefinidos são
// pulados (não viram zeros).
func (r *ChartRepositoryImpl) RenderPNG(req *entity.ChartRequest) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("nil chart request")
	}

	switch req.Kind {
	case entity.ChartRevenueVsBudget, entity.ChartOpexBreakdown:
		return renderBars(req)
	case entity.ChartGrossMarginLine, entity.ChartCashTrendLine, entity.ChartEbitdaLine:
		return renderLine(req)
	default:
		return nil, fmt.Errorf("unknown chart kind: %s", req.Kind)
	}
}

func renderBars(req *entity.ChartRequest) ([]byte, error) {
	if len(req.Bars) == 0 {
		return nil, fmt.Errorf("chart %q has no bars", req.Title)
	}

	values := make([]gochart.Value, 0, len(req.Bars))
	for _, bar := range req.Bars {
		values = append(values, gochart.Value{Label: bar.Label, Value: bar.Value})
	}

	graph := gochart.BarChart{
		Title:    req.Title,
		Width:    600,
		Height:   360,
		BarWidth: 60,
		XAxis:    gochart.Style{TextRotationDegrees: 20},
		YAxis: gochart.YAxis{
			Name: req.YLabel,
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderLine(req *entity.ChartRequest) ([]byte, error) {
	var (
		xs    []float64
		ys    []float64
		ticks []gochart.Tick
	)
	for i, point := range req.Points {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: point.Label})
		if !point.Defined {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, point.Value)
	}
	// go-chart exige pelo menos dois pontos para traçar uma linha.
	if len(xs) < 2 {
		return nil, fmt.Errorf("chart %q has fewer than two defined points", req.Title)
	}

	graph := gochart.Chart{
		Title:  req.Title,
		Width:  640,
		Height: 320,
		XAxis: gochart.XAxis{
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name: req.YLabel,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeWidth: 2.0,
					DotWidth:    3.0,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering line chart: %w", err)
	}
	return buf.Bytes(), nil
}
