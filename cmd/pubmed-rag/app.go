package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-rag/internal/pubmed"
	"github.com/pdiddy/pubmed-rag/internal/report"
	"github.com/pdiddy/pubmed-rag/internal/session"
	"github.com/pdiddy/pubmed-rag/internal/summarize"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// newOrchestrator wires the literature client, the Gemini summarizer, and
// the PDF renderer from cfg. Without a credential no Gemini client is
// created and the orchestrator refuses searches and questions.
func newOrchestrator(ctx context.Context, cfg types.Config, log *zap.Logger) (*session.Orchestrator, error) {
	client := pubmed.NewClient(&http.Client{Timeout: cfg.PubMed.Timeout}, cfg.PubMed)
	searcher := &pubmed.Searcher{
		Fetcher:    client,
		MaxResults: cfg.PubMed.MaxResults,
		Log:        log.Named("pubmed"),
	}

	var sum session.Summarizer
	if cfg.HasCredential() {
		backend, err := summarize.NewGeminiBackend(ctx, cfg.AI.APIKey, &http.Client{Timeout: cfg.AI.Timeout})
		if err != nil {
			return nil, err
		}
		sum = &summarize.Client{
			Backend: backend,
			Model:   cfg.AI.Model,
			Log:     log.Named("summarize"),
		}
	}

	renderer := report.New(cfg.Report.Title)
	return session.NewOrchestrator(searcher, sum, renderer, cfg.HasCredential(), log.Named("session")), nil
}
