package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "PUBMED_RAG_AI_API_KEY", "PUBMED_RAG_PUBMED_MAX_RESULTS", "PUBMED_RAG_AI_MODEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	v := viper.New()
	bindEnv(v)
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(newTestViper(t))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PubMed.MaxResults)
	assert.Equal(t, "pubmed-rag", cfg.PubMed.Tool)
	assert.Equal(t, 30*time.Second, cfg.PubMed.Timeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, "PubMed Research Report", cfg.Report.Title)
	assert.Equal(t, 2023, cfg.UI.DefaultYear)
	assert.Equal(t, ".", cfg.UI.ExportDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.HasCredential())
}

func TestLoadConfigEnvironment(t *testing.T) {
	v := newTestViper(t)
	t.Setenv("GEMINI_API_KEY", "AIza-env")
	t.Setenv("PUBMED_RAG_PUBMED_MAX_RESULTS", "5")
	t.Setenv("PUBMED_RAG_AI_MODEL", "gemini-2.5-pro")

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "AIza-env", cfg.AI.APIKey)
	assert.Equal(t, 5, cfg.PubMed.MaxResults)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.True(t, cfg.HasCredential())
}

func TestLoadConfigPrefixedKey(t *testing.T) {
	v := newTestViper(t)
	t.Setenv("PUBMED_RAG_AI_API_KEY", "AIza-prefixed")

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "AIza-prefixed", cfg.AI.APIKey)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubmed-rag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pubmed:
  max_results: 7
  email: me@example.org
  timeout: 5s
report:
  title: Scaffold Review
ui:
  default_year: 2019
`), 0o644))

	v := newTestViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.PubMed.MaxResults)
	assert.Equal(t, "me@example.org", cfg.PubMed.Email)
	assert.Equal(t, 5*time.Second, cfg.PubMed.Timeout)
	assert.Equal(t, "Scaffold Review", cfg.Report.Title)
	assert.Equal(t, 2019, cfg.UI.DefaultYear)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
}

func TestLoadConfigNonPositiveMaxResults(t *testing.T) {
	v := newTestViper(t)
	v.Set("pubmed.max_results", 0)

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.PubMed.MaxResults)
}
