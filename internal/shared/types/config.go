package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DataDir    string   `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
