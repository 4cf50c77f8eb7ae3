package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	DataDir    string
	Question   string
	Export     bool
	ReportName string
	ReportType []string
	Dir        string
}
