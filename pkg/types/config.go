package types

import "time"

// HTTPConfig holds shared HTTP settings used by clients that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-rag/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// PubMedConfig holds settings for the literature client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults caps the identifiers requested per search (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// APIKey is an optional NCBI API key. With a key NCBI allows 10
	// requests per second instead of 3.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Email and Tool identify the caller to NCBI.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
}

// AIConfig holds settings for the generative model.
type AIConfig struct {
	// Model is the Gemini model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the Gemini API key. Searching and chatting are blocked
	// while it is empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Timeout bounds a single generate call.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// ReportConfig holds settings for PDF export.
type ReportConfig struct {
	// Title is printed centered at the top of every page.
	Title string `json:"title" yaml:"title" mapstructure:"title"`
}

// UIConfig holds settings for the interactive interface.
type UIConfig struct {
	// DefaultYear preselects the minimum publication year.
	DefaultYear int `json:"default_year" yaml:"default_year" mapstructure:"default_year"`

	// ExportDir is where PDF, snapshot, and reference exports are written.
	ExportDir string `json:"export_dir" yaml:"export_dir" mapstructure:"export_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// File is an optional log file path. Empty means stderr.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// Config groups all settings for the application.
type Config struct {
	PubMed PubMedConfig `json:"pubmed" yaml:"pubmed" mapstructure:"pubmed"`
	AI     AIConfig     `json:"ai" yaml:"ai" mapstructure:"ai"`
	Report ReportConfig `json:"report" yaml:"report" mapstructure:"report"`
	UI     UIConfig     `json:"ui" yaml:"ui" mapstructure:"ui"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// HasCredential reports whether a Gemini API key is configured.
func (c Config) HasCredential() bool {
	return c.AI.APIKey != ""
}
