// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-rag/internal/pubmed"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// Literature searches the bibliographic database.
type Literature interface {
	Search(ctx context.Context, q types.SearchQuery) (pubmed.Corpus, error)
}

// Summarizer produces the consensus summary and chat answers.
type Summarizer interface {
	Synthesize(ctx context.Context, corpus string) (string, error)
	Answer(ctx context.Context, corpus, question string) (string, error)
}

// Renderer turns display text into a document.
type Renderer interface {
	Render(text string) ([]byte, error)
}

// Outcome describes a completed search.
type Outcome struct {
	Query types.SearchQuery
	Found int
}

// Message is the notice shown after the search.
func (o Outcome) Message() string {
	if o.Found == 0 {
		return NoResultsMessage
	}
	return fmt.Sprintf("Analysis Complete. Found %d relevant papers.", o.Found)
}

// Orchestrator runs the session operations. All calls are sequential;
// callers must not share one Session between concurrent operations.
type Orchestrator struct {
	Literature Literature
	Summarizer Summarizer
	Renderer   Renderer

	// Credential reports whether a Gemini API key is configured.
	Credential bool

	Log *zap.Logger

	validate *validator.Validate
}

// NewOrchestrator wires the collaborators. A nil logger discards logs.
func NewOrchestrator(lit Literature, sum Summarizer, r Renderer, credential bool, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		Literature: lit,
		Summarizer: sum,
		Renderer:   r,
		Credential: credential,
		Log:        log,
		validate:   newValidator(time.Now),
	}
}

// Query validates topic and minYear and returns the search query.
func (o *Orchestrator) Query(topic string, minYear int) (types.SearchQuery, error) {
	q := types.NewSearchQuery(topic, minYear)
	if err := o.validator().Struct(q); err != nil {
		return types.SearchQuery{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return q, nil
}

// Search runs a literature search and, when it finds records, a synthesis
// over them. On success the corpus and summary are replaced and the
// transcript is cleared. When nothing qualifies the session returns to
// Idle and the summarizer is not called. Any failure leaves s unchanged.
func (o *Orchestrator) Search(ctx context.Context, s *Session, topic string, minYear int) (Outcome, error) {
	if !o.Credential {
		return Outcome{}, ErrMissingCredential
	}
	q, err := o.Query(topic, minYear)
	if err != nil {
		return Outcome{}, err
	}
	log := o.logger().With(zap.String("session", s.ID.String()))

	corpus, err := o.Literature.Search(ctx, q)
	if err != nil {
		log.Warn("literature search failed", zap.String("topic", q.Topic), zap.Error(err))
		return Outcome{}, &OperationError{Op: "search", Err: err}
	}
	if corpus.IsEmpty() {
		s.reset()
		log.Info("search found no abstracts", zap.String("topic", q.Topic), zap.Int("min_year", q.MinYear))
		return Outcome{Query: q}, nil
	}

	summary, err := o.Summarizer.Synthesize(ctx, corpus.Text)
	if err != nil {
		log.Warn("synthesis failed", zap.Error(err))
		return Outcome{}, &OperationError{Op: "synthesize", Err: err}
	}

	s.Query = &q
	s.Corpus = corpus
	s.Summary = summary
	s.Transcript = nil
	log.Info("session ready", zap.String("topic", q.Topic), zap.Int("found", corpus.FoundCount()))
	return Outcome{Query: q, Found: corpus.FoundCount()}, nil
}

// Ask answers question from the session corpus. On success the user turn
// and then the assistant turn are appended to the transcript; on failure
// the transcript is unchanged.
func (o *Orchestrator) Ask(ctx context.Context, s *Session, question string) (types.ChatMessage, error) {
	if !o.Credential {
		return types.ChatMessage{}, ErrMissingCredential
	}
	if !s.HasCorpus() {
		return types.ChatMessage{}, ErrNoCorpus
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return types.ChatMessage{}, ErrEmptyQuestion
	}

	answer, err := o.Summarizer.Answer(ctx, s.Corpus.Text, question)
	if err != nil {
		o.logger().Warn("answer failed", zap.String("session", s.ID.String()), zap.Error(err))
		return types.ChatMessage{}, &OperationError{Op: "answer", Err: err}
	}

	reply := types.ChatMessage{Role: types.RoleAssistant, Content: answer}
	s.Transcript = append(s.Transcript,
		types.ChatMessage{Role: types.RoleUser, Content: question},
		reply)
	return reply, nil
}

// Export renders the displayed text (summary and transcript) as a PDF.
func (o *Orchestrator) Export(s *Session) ([]byte, error) {
	text := s.DisplayText()
	if text == "" {
		return nil, ErrNoCorpus
	}
	data, err := o.Renderer.Render(text)
	if err != nil {
		return nil, &OperationError{Op: "export", Err: err}
	}
	return data, nil
}

func (o *Orchestrator) validator() *validator.Validate {
	if o.validate == nil {
		o.validate = newValidator(time.Now)
	}
	return o.validate
}

func (o *Orchestrator) logger() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}
	return o.Log
}
