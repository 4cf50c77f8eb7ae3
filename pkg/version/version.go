// Package version expõe a versão do binário e o aviso de release novo.
package version

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Preenchidos por ldflags no release; em builds locais caem no build info.
var (
	Version   = "0.0.0-dev"
	Commit    = ""
	BuildTime = ""
)

const releaseURL = "https://api.github.com/repos/dmarins/cfo-copilot-go/releases/latest"

func init() {
	fillFromBuildInfo()
}

// fillFromBuildInfo completa Version/Commit/BuildTime com os metadados VCS
// embutidos pelo toolchain. Valores já definidos por ldflags têm precedência.
func fillFromBuildInfo() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}
	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; len(rev) >= 7 {
			Commit = rev[:7]
		}
	}
	if BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}
	if tag := strings.TrimPrefix(settings["vcs.tag"], "v"); tag != "" {
		Version = tag
		if settings["vcs.modified"] == "true" {
			Version += "-dirty"
		}
	}
}

// FormatVersion retorna a versão com commit e build time quando disponíveis.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}
	commit := Commit
	if commit == "" {
		commit = "development"
	}

	switch {
	case commit == "development" && BuildTime == "":
		return fmt.Sprintf("%s (development)", ver)
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, commit)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}
}

// CheckLatestVersion consulta o último release publicado e avisa quando existe
// versão mais nova. Builds dev não são verificados; falhas de rede são
// silenciosas.
func CheckLatestVersion(currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(releaseURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest > currentVersion {
		pterm.Warning.Printfln("A new version of CFO Copilot is available: %s", latest)
		pterm.Info.Println("Please update using: go install github.com/dmarins/cfo-copilot-go/cmd/cfo-copilot@latest")
	}
}
