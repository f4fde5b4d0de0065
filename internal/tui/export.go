// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/pubmed-rag/internal/pubmed"
	"github.com/pdiddy/pubmed-rag/internal/session"
)

// Export file names, relative to the export directory.
const (
	PDFFile        = "research-summary.pdf"
	ReferencesFile = "references.yaml"
)

// SnapshotFile names the YAML snapshot for s.
func SnapshotFile(s *session.Session) string {
	return fmt.Sprintf("session-%s.yaml", s.ID.String()[:8])
}

// exportPDFCmd renders the displayed text and writes it to dir.
func exportPDFCmd(orch *session.Orchestrator, s *session.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, PDFFile)
		data, err := orch.Export(s)
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return ExportDoneMsg{Kind: "PDF", Path: path, Err: err}
	}
}

// snapshotCmd writes the session snapshot to dir.
func snapshotCmd(s *session.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, SnapshotFile(s))
		err := writeFile(path, func(w io.Writer) error { return session.WriteSnapshot(s, w) })
		return ExportDoneMsg{Kind: "Snapshot", Path: path, Err: err}
	}
}

// referencesCmd writes the corpus records as CSL-YAML to dir.
func referencesCmd(s *session.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, ReferencesFile)
		err := writeFile(path, func(w io.Writer) error { return pubmed.FormatCSL(s.Corpus.Records, w) })
		return ExportDoneMsg{Kind: "References", Path: path, Err: err}
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
