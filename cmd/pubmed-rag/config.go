package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-rag/internal/pubmed"
	"github.com/pdiddy/pubmed-rag/internal/report"
	"github.com/pdiddy/pubmed-rag/internal/summarize"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// uiLogFile keeps interactive sessions from writing logs over the screen.
const uiLogFile = "pubmed-rag.log"

// setDefaults registers every configuration key so that Unmarshal sees
// values supplied only through the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("pubmed.max_results", pubmed.DefaultMaxResults)
	v.SetDefault("pubmed.api_key", "")
	v.SetDefault("pubmed.email", "")
	v.SetDefault("pubmed.tool", "pubmed-rag")
	v.SetDefault("pubmed.timeout", 30*time.Second)
	v.SetDefault("pubmed.user_agent", "pubmed-rag/"+version)
	v.SetDefault("ai.model", summarize.DefaultModel)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.timeout", 120*time.Second)
	v.SetDefault("report.title", report.DefaultTitle)
	v.SetDefault("ui.default_year", types.DefaultYear)
	v.SetDefault("ui.export_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// bindEnv maps keys to PUBMED_RAG_* variables, e.g. pubmed.max_results
// to PUBMED_RAG_PUBMED_MAX_RESULTS.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("PUBMED_RAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadConfig merges defaults, the config file, and the environment into a
// Config. GEMINI_API_KEY takes precedence over PUBMED_RAG_AI_API_KEY.
func loadConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY", "PUBMED_RAG_AI_API_KEY"); err != nil {
		return types.Config{}, fmt.Errorf("binding ai.api_key: %w", err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	if cfg.PubMed.MaxResults <= 0 {
		cfg.PubMed.MaxResults = pubmed.DefaultMaxResults
	}
	return cfg, nil
}
