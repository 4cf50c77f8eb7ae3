package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dmarins/cfo-copilot-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$  /$$$$$$$$ /$$$$$$         /$$$$$$                      /$$ /$$                  /$$
         /$$__  $$| $$_____//$$__  $$       /$$__  $$                    |__/| $$                 | $$
        | $$  \__/| $$     | $$  \ $$      | $$  \__/  /$$$$$$   /$$$$$$  /$$| $$  /$$$$$$  /$$$$$$$$$$$$
        | $$      | $$$$$  | $$  | $$      | $$       /$$__  $$ /$$__  $$| $$| $$ /$$__  $$|_  $$_/
        | $$      | $$__/  | $$  | $$      | $$      | $$  \ $$| $$  \ $$| $$| $$| $$  \ $$  | $$
        | $$    $$| $$     | $$  | $$      | $$    $$| $$  | $$| $$  | $$| $$| $$| $$  | $$  | $$ /$$
        |  $$$$$$/| $$     |  $$$$$$/      |  $$$$$$/|  $$$$$$/| $$$$$$$/| $$| $$|  $$$$$$/  |  $$$$/
         \______/ |__/      \______/        \______/  \______/ | $$____/ |__/|__/ \______/    \___/
                                                               | $$
                                                               | $$
                                                               |__/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("CFO Copilot CLI (v%s)", formattedVersion)))
	fmt.Println()
	fmt.Println("Sample questions:")
	fmt.Println("  What was June 2025 revenue vs budget in USD?")
	fmt.Println("  Show Gross Margin % trend for the last 3 months.")
	fmt.Println("  Break down Opex by category for June 2025.")
	fmt.Println("  What is our cash runway right now?")
}
