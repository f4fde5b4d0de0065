// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-rag CLI: an interactive
// terminal UI plus one-shot search and render subcommands over the same
// session orchestrator.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/pdiddy/pubmed-rag/internal/secrets"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appConfig is the merged configuration, populated before any subcommand runs.
var appConfig types.Config

// rootCmd is the base command for the pubmed-rag CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-rag",
	Short: "Search PubMed and summarize the abstracts with Gemini",
	Long: `pubmed-rag searches PubMed for a research topic, fetches up to ten recent
abstracts, and asks Gemini for a consensus summary. Follow-up questions are
answered strictly from the same abstracts, and the summary and chat can be
exported to PDF.

Run "pubmed-rag ui" for the interactive interface or "pubmed-rag search" for
a one-shot run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		s, err := secrets.Load(secrets.DefaultDir, os.Stderr)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		s.Apply(&cfg)
		appConfig = cfg
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-rag.yaml or ~/.config/pubmed-rag/pubmed-rag.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// .env values never override variables already set in the environment.
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-rag")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-rag"))
		}
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
