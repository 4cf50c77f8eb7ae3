package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/dmarins/cfo-copilot-go/internal/domain/entity"
	"github.com/dmarins/cfo-copilot-go/internal/domain/interpreter"
	"github.com/dmarins/cfo-copilot-go/internal/domain/metrics"
	"github.com/dmarins/cfo-copilot-go/internal/domain/repository"
	"github.com/dmarins/cfo-copilot-go/internal/shared/types"
)

const (
	// Janela padrão da tendência de margem quando a pergunta não traz uma.
	defaultMarginWindow = 3
	// Janela fixa de exibição para tendências de EBITDA e caixa.
	trendDisplayWindow = 6
)

// CopilotUseCase handles the question-answering and export functionality.
type CopilotUseCase struct {
	financeRepo repository.FinanceRepository
	chartRepo   repository.ChartRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewCopilotUseCase creates a new copilot use case.
func NewCopilotUseCase(
	financeRepo repository.FinanceRepository,
	chartRepo repository.ChartRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *CopilotUseCase {
	return &CopilotUseCase{
		financeRepo: financeRepo,
		chartRepo:   chartRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// Run executa a funcionalidade principal: carrega o snapshot uma única vez e
// responde perguntas (one-shot ou interativo) e/ou exporta o relatório.
func (uc *CopilotUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se fornecido (flags têm precedência).
	if args.ConfigFile != "" {
		config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		uc.mergeConfig(args, config)
	}

	status := uc.console.Status(fmt.Sprintf("Loading finance data from %s...", args.DataDir))
	snapshot, err := uc.financeRepo.LoadSnapshot(ctx, args.DataDir)
	status.Stop()
	if err != nil {
		return err
	}
	if len(snapshot.Actuals) == 0 {
		return types.ErrEmptySnapshot
	}
	uc.console.LogInfo("Loaded %d actuals, %d budget, %d fx, %d cash rows (latest month: %s)",
		len(snapshot.Actuals), len(snapshot.Budget), len(snapshot.Fx), len(snapshot.Cash),
		snapshot.LatestActualMonth())

	session := &types.Session{}

	if args.Question != "" {
		answer := uc.AnswerQuestion(snapshot, args.Question)
		session.Update(answer)
		uc.console.DisplayAnswer(answer.Text)
		uc.console.DisplayChart(answer.Chart)
	}

	if args.Export {
		if err := uc.ExportSnapshot(snapshot, session, args); err != nil {
			return err
		}
	}

	// Sem pergunta nem export: entra no laço interativo.
	if args.Question == "" && !args.Export {
		return uc.runInteractive(snapshot, session, args)
	}
	return nil
}

// runInteractive é o laço pergunta-resposta da sessão. Uma pergunta por vez,
// processada até o fim antes da próxima. Sem concorrência, snapshot só de
// leitura.
func (uc *CopilotUseCase) runInteractive(
	snapshot *entity.FinanceSnapshot,
	session *types.Session,
	args *types.CLIArgs,
) error {
	uc.console.LogInfo("Ask a finance question ('help' for examples, 'export' for a PDF snapshot, 'exit' to quit)")

	for {
		question, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Ask").
			Show()
		if err != nil {
			return err
		}
		question = strings.TrimSpace(question)

		switch strings.ToLower(question) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "export":
			if err := uc.ExportSnapshot(snapshot, session, args); err != nil {
				uc.console.LogError("Export failed: %s", err)
			}
			continue
		}

		answer := uc.AnswerQuestion(snapshot, question)
		session.Update(answer)
		uc.console.DisplayAnswer(answer.Text)
		uc.console.DisplayChart(answer.Chart)
	}
}

// AnswerQuestion é o orquestrador de resposta: classifica a pergunta, resolve
// a referência de tempo, invoca a métrica correspondente e formata o texto com
// o pedido de gráfico. Uma única passada por pergunta, sem retries; perguntas
// não reconhecidas caem na resposta de ajuda.
func (uc *CopilotUseCase) AnswerQuestion(snapshot *entity.FinanceSnapshot, question string) entity.Answer {
	intent := interpreter.ClassifyIntent(question)
	answer := entity.Answer{Intent: intent.String()}

	switch intent {
	case interpreter.IntentRevenueVsBudget:
		month := resolveMonth(interpreter.ExtractMonth(question), snapshot.ActualMonths())
		result := metrics.RevenueVsBudget(snapshot, month)
		answer.Text = formatRevenueVsBudget(result)
		answer.Chart = revenueChart(result)

	case interpreter.IntentGrossMarginTrend:
		window := defaultMarginWindow
		if n, ok := interpreter.ExtractWindow(question); ok {
			window = n
		}
		months := lastMonths(snapshot.ActualMonths(), window)
		points := metrics.GrossMarginTrend(snapshot, months)
		answer.Text = formatGrossMarginTrend(points, window)
		answer.Chart = grossMarginChart(points, window)

	case interpreter.IntentOpexBreakdown:
		month := resolveMonth(interpreter.ExtractMonth(question), snapshot.ActualMonths())
		categories := metrics.OpexBreakdown(snapshot, month)
		if len(categories) == 0 {
			// Sem dados: mensagem curta e nenhum gráfico.
			answer.Text = fmt.Sprintf("No Opex data for %s.", month)
			return answer
		}
		answer.Text = formatOpexBreakdown(month, categories)
		answer.Chart = opexChart(month, categories)

	case interpreter.IntentCashRunway:
		result := metrics.CashRunway(snapshot)
		answer.Text = formatCashRunway(result)
		answer.Chart = cashChart(snapshot.LastCashPoints(trendDisplayWindow))

	case interpreter.IntentEbitdaTrend:
		points := metrics.EbitdaByMonth(snapshot)
		if len(points) > trendDisplayWindow {
			points = points[len(points)-trendDisplayWindow:]
		}
		answer.Text = formatEbitdaTrend(points)
		answer.Chart = ebitdaChart(points)

	default:
		answer.Text = helpText
	}

	return answer
}

// BuildSnapshotReport monta o pacote de export: KPIs do mês mais recente,
// tendências e gráficos renderizados. Falha de renderização vira warning e o
// relatório segue sem a imagem.
func (uc *CopilotUseCase) BuildSnapshotReport(
	snapshot *entity.FinanceSnapshot,
	session *types.Session,
) *entity.SnapshotReport {
	latest := snapshot.LatestActualMonth()

	report := &entity.SnapshotReport{
		AsOf:    latest,
		Revenue: metrics.RevenueVsBudget(snapshot, latest),
		Opex:    metrics.OpexBreakdown(snapshot, latest),
		Ebitda:  metrics.EbitdaByMonth(snapshot),
		Cash:    snapshot.LastCashPoints(trendDisplayWindow),
		Runway:  metrics.CashRunway(snapshot),
	}

	report.RevenueChartPNG = uc.renderChart(revenueChart(report.Revenue))
	if len(report.Opex) > 0 {
		report.OpexChartPNG = uc.renderChart(opexChart(latest, report.Opex))
	}
	report.CashChartPNG = uc.renderChart(cashChart(report.Cash))

	if session != nil && session.LastAnswer != "" {
		report.LatestAnswer = session.LastAnswer
		if session.LastChart != nil {
			report.LatestChartPNG = uc.renderChart(session.LastChart)
		}
	}

	return report
}

// ExportSnapshot exporta o relatório nos formatos pedidos (csv, json, pdf).
func (uc *CopilotUseCase) ExportSnapshot(
	snapshot *entity.FinanceSnapshot,
	session *types.Session,
	args *types.CLIArgs,
) error {
	reportName := args.ReportName
	if reportName == "" {
		reportName = "cfo-snapshot"
	}
	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"pdf"}
	}

	status := uc.console.Status("Building snapshot report...")
	report := uc.BuildSnapshotReport(snapshot, session)
	status.Stop()

	// Resumo EBITDA por mês antes de gravar os arquivos.
	if len(report.Ebitda) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Month")
		table.AddColumn("Revenue (USD)")
		table.AddColumn("COGS (USD)")
		table.AddColumn("Opex Total (USD)")
		table.AddColumn("EBITDA (USD)")
		for _, point := range report.Ebitda {
			table.AddRow(point.Month,
				point.Revenue.StringFixed(2),
				point.COGS.StringFixed(2),
				point.OpexTotal.StringFixed(2),
				point.EBITDA.StringFixed(2))
		}
		uc.console.Println(table.Render())
	}

	for _, reportType := range reportTypes {
		switch reportType {
		case "pdf":
			path, err := uc.exportRepo.ExportSnapshotToPDF(report, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export snapshot to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported snapshot to PDF: %s", path)
			}
		case "csv":
			path, err := uc.exportRepo.ExportSnapshotToCSV(report, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export snapshot to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported snapshot to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportSnapshotToJSON(report, reportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export snapshot to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported snapshot to JSON: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
	return nil
}

// renderChart renderiza um pedido de gráfico, tolerando falhas.
func (uc *CopilotUseCase) renderChart(req *entity.ChartRequest) []byte {
	if req == nil {
		return nil
	}
	png, err := uc.chartRepo.RenderPNG(req)
	if err != nil {
		uc.console.LogWarning("Chart rendering failed (%s): %s", req.Kind, err)
		return nil
	}
	return png
}

// mergeConfig aplica valores do arquivo de configuração aos args não setados.
func (uc *CopilotUseCase) mergeConfig(args *types.CLIArgs, config *types.Config) {
	if args.DataDir == "" && config.DataDir != "" {
		args.DataDir = config.DataDir
	}
	if args.ReportName == "" && config.ReportName != "" {
		args.ReportName = config.ReportName
	}
	if len(args.ReportType) == 0 && len(config.ReportType) > 0 {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" && config.Dir != "" {
		args.Dir = config.Dir
	}
}

// resolveMonth resolve uma referência de mês contra os meses presentes nos
// dados: exata usa o próprio mês; parcial escolhe o mês mais recente com
// aquele número; ausente (ou parcial sem candidato) cai no mês mais recente.
func resolveMonth(ref interpreter.MonthRef, months []string) string {
	switch ref.Kind {
	case interpreter.MonthRefExact:
		return ref.Month
	case interpreter.MonthRefPartial:
		suffix := fmt.Sprintf("-%02d", ref.MonthNum)
		for i := len(months) - 1; i >= 0; i-- {
			if strings.HasSuffix(months[i], suffix) {
				return months[i]
			}
		}
	}
	if len(months) == 0 {
		return ""
	}
	return months[len(months)-1]
}

// lastMonths retorna os últimos n meses de uma lista cronológica.
func lastMonths(months []string, n int) []string {
	if n <= 0 || len(months) == 0 {
		return nil
	}
	if len(months) > n {
		months = months[len(months)-n:]
	}
	out := make([]string, len(months))
	copy(out, months)
	return out
}
