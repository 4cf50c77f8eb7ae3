package main

import (
	"fmt"
	"os"

	"github.com/dmarins/cfo-copilot-go/internal/adapter/driven/chart"
	"github.com/dmarins/cfo-copilot-go/internal/adapter/driven/config"
	"github.com/dmarins/cfo-copilot-go/internal/adapter/driven/csvdata"
	"github.com/dmarins/cfo-copilot-go/internal/adapter/driven/export"
	"github.com/dmarins/cfo-copilot-go/internal/adapter/driving/cli"
	"github.com/dmarins/cfo-copilot-go/internal/application/usecase"
	"github.com/dmarins/cfo-copilot-go/pkg/console"
	"github.com/dmarins/cfo-copilot-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	financeRepo := csvdata.NewCSVFinanceRepository()
	chartRepo := chart.NewChartRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	copilotUseCase := usecase.NewCopilotUseCase(
		financeRepo,
		chartRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetCopilotUseCase(copilotUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
