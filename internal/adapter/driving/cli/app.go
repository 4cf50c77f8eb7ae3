package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmarins/cfo-copilot-go/internal/application/usecase"
	"github.com/dmarins/cfo-copilot-go/internal/shared/types"
	"github.com/dmarins/cfo-copilot-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	copilotUseCase *usecase.CopilotUseCase
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "cfo-copilot",
		Short:   "CFO Copilot CLI — finance questions answered from monthly CSV tables",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "CFO Copilot version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data-dir", "D", "fixtures", "Directory with the actuals/budget/fx/cash CSV tables")
	rootCmd.PersistentFlags().StringP("ask", "q", "", "Ask a single question and exit (omit for interactive mode)")
	rootCmd.PersistentFlags().Bool("export", false, "Export the snapshot report and exit")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"pdf"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	dataDir, _ := app.rootCmd.Flags().GetString("data-dir")
	question, _ := app.rootCmd.Flags().GetString("ask")
	export, _ := app.rootCmd.Flags().GetBool("export")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		DataDir:    dataDir,
		Question:   question,
		Export:     export,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.copilotUseCase.Run(ctx, cliArgs)
}

// SetCopilotUseCase sets the copilot use case for the CLI app.
func (app *CLIApp) SetCopilotUseCase(useCase *usecase.CopilotUseCase) {
	app.copilotUseCase = useCase
}
