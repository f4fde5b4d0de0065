package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-rag/internal/logging"
	"github.com/pdiddy/pubmed-rag/internal/pubmed"
	"github.com/pdiddy/pubmed-rag/internal/session"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic...]",
	Short: "Run one search, summary, and optional questions",
	Long: `Search queries PubMed for the topic, keeps up to ten papers published in or
after --year that have an abstract, and prints Gemini's consensus summary.
Each --ask question is then answered from the same abstracts. Exports are
written when --pdf, --csl, or --snapshot is given.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("year", 0, "minimum publication year (default from ui.default_year)")
	searchCmd.Flags().StringArray("ask", nil, "follow-up question, repeatable")
	searchCmd.Flags().String("pdf", "", "write the summary and answers to this PDF file")
	searchCmd.Flags().String("csl", "", "write the retrieved papers as CSL-YAML to this file")
	searchCmd.Flags().String("snapshot", "", "write the session as YAML to this file")
	searchCmd.Flags().Bool("json", false, "print the session as JSON instead of text")

	rootCmd.AddCommand(searchCmd)
}

// searchOptions are the inputs to one non-interactive run.
type searchOptions struct {
	Topic     string
	Year      int
	Questions []string
	PDFPath   string
	CSLPath   string
	Snapshot  string
	JSON      bool
}

// searchResult is the --json output.
type searchResult struct {
	Session    string              `json:"session"`
	Query      *types.SearchQuery  `json:"query,omitempty"`
	Found      int                 `json:"found"`
	Summary    string              `json:"summary,omitempty"`
	Records    []types.Article     `json:"records,omitempty"`
	Transcript []types.ChatMessage `json:"transcript,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := searchOptions{Topic: strings.Join(args, " ")}
	opts.Year, _ = cmd.Flags().GetInt("year")
	if opts.Year == 0 {
		opts.Year = appConfig.UI.DefaultYear
	}
	opts.Questions, _ = cmd.Flags().GetStringArray("ask")
	opts.PDFPath, _ = cmd.Flags().GetString("pdf")
	opts.CSLPath, _ = cmd.Flags().GetString("csl")
	opts.Snapshot, _ = cmd.Flags().GetString("snapshot")
	opts.JSON, _ = cmd.Flags().GetBool("json")

	if opts.Topic == "" {
		return fmt.Errorf("provide a research topic")
	}

	log, err := logging.New(appConfig.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	orch, err := newOrchestrator(cmd.Context(), appConfig, log)
	if err != nil {
		return err
	}
	return searchAndReport(cmd.Context(), orch, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// searchAndReport runs the search and questions through orch. Progress
// and notices go to w; the summary, answers, or JSON go to out.
func searchAndReport(ctx context.Context, orch *session.Orchestrator, opts searchOptions, out, w io.Writer) error {
	s := session.New()

	q, err := orch.Query(opts.Topic, opts.Year)
	if err == nil {
		fmt.Fprintf(w, "Querying PubMed for %s...\n", q)
	}
	outcome, err := orch.Search(ctx, s, opts.Topic, opts.Year)
	if err != nil {
		fmt.Fprintln(w, session.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(w, outcome.Message())
	if outcome.Found == 0 {
		if opts.JSON {
			return writeJSON(out, s)
		}
		return nil
	}

	if !opts.JSON {
		fmt.Fprintf(out, "%s\n", strings.TrimSpace(s.Summary))
	}
	for _, question := range opts.Questions {
		fmt.Fprintln(w, "Analyzing...")
		reply, err := orch.Ask(ctx, s, question)
		if err != nil {
			fmt.Fprintln(w, session.ErrorMessage(err))
			return err
		}
		if !opts.JSON {
			fmt.Fprintf(out, "\nQ: %s\nA: %s\n", strings.TrimSpace(question), strings.TrimSpace(reply.Content))
		}
	}

	if err := writeExports(orch, s, opts, w); err != nil {
		return err
	}
	if opts.JSON {
		return writeJSON(out, s)
	}
	return nil
}

func writeExports(orch *session.Orchestrator, s *session.Session, opts searchOptions, w io.Writer) error {
	if opts.PDFPath != "" {
		data, err := orch.Export(s)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.PDFPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.PDFPath, err)
		}
		fmt.Fprintf(w, "PDF saved to %s\n", opts.PDFPath)
	}
	if opts.CSLPath != "" {
		if err := createFile(opts.CSLPath, func(f io.Writer) error { return pubmed.FormatCSL(s.Corpus.Records, f) }); err != nil {
			return err
		}
		fmt.Fprintf(w, "References saved to %s\n", opts.CSLPath)
	}
	if opts.Snapshot != "" {
		if err := createFile(opts.Snapshot, func(f io.Writer) error { return session.WriteSnapshot(s, f) }); err != nil {
			return err
		}
		fmt.Fprintf(w, "Snapshot saved to %s\n", opts.Snapshot)
	}
	return nil
}

func writeJSON(out io.Writer, s *session.Session) error {
	res := searchResult{
		Session:    s.ID.String(),
		Query:      s.Query,
		Found:      s.Corpus.FoundCount(),
		Summary:    s.Summary,
		Records:    s.Corpus.Records,
		Transcript: s.Transcript,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func createFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
