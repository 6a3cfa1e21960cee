package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "support-ledger/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LedgerConfig holds settings for reading the support ledger.
type LedgerConfig struct {
	// CSVPath is the path to the ledger CSV file (default "docs/Support.csv").
	CSVPath string `json:"csv_path" yaml:"csv_path"`
}

// TranslateConfig holds settings for the machine-translation backend.
type TranslateConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates requests to the translation API. Usually loaded
	// from .secrets/google-translate-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ReportConfig holds settings for artifact generation.
type ReportConfig struct {
	// OutputDir is the directory the Support.<locale>.json and
	// Support.<locale>.md artifacts are written to (default "docs").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// NativeLocale is the locale the ledger free text is written in
	// (default "zh-CN"). Translation is skipped for this locale.
	NativeLocale string `json:"native_locale" yaml:"native_locale"`

	// LocaleFile optionally overrides the built-in locale table with a YAML file.
	LocaleFile string `json:"locale_file,omitempty" yaml:"locale_file,omitempty"`
}

// FetchConfig holds settings for pulling published artifacts.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PrimaryURL is the base raw-content URL the published artifacts live under.
	PrimaryURL string `json:"primary_url" yaml:"primary_url"`

	// MirrorURL is the fallback base URL used when the primary host is unreachable.
	MirrorURL string `json:"mirror_url" yaml:"mirror_url"`

	// OutputDir is the directory fetched artifacts are written to (default "docs").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Ledger    LedgerConfig    `json:"ledger" yaml:"ledger"`
	Translate TranslateConfig `json:"translate" yaml:"translate"`
	Report    ReportConfig    `json:"report" yaml:"report"`
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
}
