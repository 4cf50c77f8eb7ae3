package console

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
	"github.com/dmarins/cfo-copilot-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayAnswer exibe a resposta formatada dentro de um panel.
func (c *Console) DisplayAnswer(text string) {
	panel := pterm.DefaultBox.
		WithTitle("Answer").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(text)
	fmt.Println("\n" + panel)
}

// DisplayChart exibe um pedido de gráfico no terminal como uma tabela de
// barras horizontais escaladas. Pedido nil (resposta sem gráfico) não imprime
// nada.
func (c *Console) DisplayChart(req *entity.ChartRequest) {
	if req == nil {
		return
	}

	rendered := c.renderChartTable(req)
	if rendered == "" {
		return
	}

	panel := pterm.DefaultBox.
		WithTitle(req.Title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(rendered)

	fmt.Println("\n" + panel)
}

// renderChartTable monta a tabela rótulo/valor/barra de um pedido de gráfico.
// Retorna "" quando não há nada a desenhar.
func (c *Console) renderChartTable(req *entity.ChartRequest) string {
	type labeled struct {
		label   string
		value   float64
		defined bool
	}
	var data []labeled
	for _, bar := range req.Bars {
		data = append(data, labeled{label: bar.Label, value: bar.Value, defined: true})
	}
	for _, point := range req.Points {
		data = append(data, labeled{label: point.Label, value: point.Value, defined: point.Defined})
	}
	if len(data) == 0 {
		return ""
	}

	// Escala pelas magnitudes para suportar valores negativos (ex.: EBITDA).
	maxAbs := 0.0
	for _, d := range data {
		if abs := mathAbs(d.value); d.defined && abs > maxAbs {
			maxAbs = abs
		}
	}
	if maxAbs == 0 {
		pterm.Warning.Println("All values are zero for this chart")
		return ""
	}

	table := c.CreateTable()
	table.AddColumn("")
	table.AddColumn(req.YLabel)
	table.AddColumn("")
	for _, d := range data {
		if !d.defined {
			table.AddRow(d.label, "n/a", "")
			continue
		}
		barLength := int((mathAbs(d.value) / maxAbs) * 40)
		bar := strings.Repeat("█", barLength)
		barColored := pterm.FgBlue.Sprint(bar)
		if d.value < 0 {
			barColored = pterm.FgRed.Sprint(bar)
		}
		table.AddRow(d.label, fmt.Sprintf("%.1f", d.value), barColored)
	}
	return table.Render()
}

func mathAbs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
