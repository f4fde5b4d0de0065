package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-rag/internal/logging"
	"github.com/pdiddy/pubmed-rag/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive terminal interface",
	Long: `UI opens a full-screen interface with a year selector, a topic input, the
consensus summary, and a chat over the retrieved abstracts. Logs go to
pubmed-rag.log unless log.file is configured.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().Int("year", 0, "preselected minimum publication year (default from ui.default_year)")
	uiCmd.Flags().String("export-dir", "", "directory for PDF, snapshot, and reference exports")

	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg.Log.File == "" {
		cfg.Log.File = uiLogFile
	}
	if year, _ := cmd.Flags().GetInt("year"); year != 0 {
		cfg.UI.DefaultYear = year
	}
	if dir, _ := cmd.Flags().GetString("export-dir"); dir != "" {
		cfg.UI.ExportDir = dir
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	orch, err := newOrchestrator(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	model := tui.New(tui.Options{
		Orchestrator: orch,
		DefaultYear:  cfg.UI.DefaultYear,
		ExportDir:    cfg.UI.ExportDir,
	})
	log.Info("ui started", zap.String("session", model.Session().ID.String()))

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
