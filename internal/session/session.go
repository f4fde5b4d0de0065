// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the per-user research session (query, corpus,
// summary, chat transcript) and the orchestrator that moves it between
// states: search, synthesize, answer, and export.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/pubmed-rag/internal/pubmed"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// Session is the state of one research session. A session without a
// corpus is Idle; a session with a corpus and summary is Ready, and may
// carry a chat transcript. Handlers receive the session explicitly.
type Session struct {
	ID uuid.UUID

	// Query is the last search that produced a corpus, or nil when Idle.
	Query *types.SearchQuery

	Corpus     pubmed.Corpus
	Summary    string
	Transcript []types.ChatMessage
}

// New returns an Idle session with a fresh identifier.
func New() *Session {
	return &Session{ID: uuid.New()}
}

// HasCorpus reports whether the session is Ready: chat and export are
// only reachable in this state.
func (s *Session) HasCorpus() bool {
	return !s.Corpus.IsEmpty()
}

// Clone returns a deep copy that can be mutated without affecting s.
func (s *Session) Clone() *Session {
	c := *s
	if s.Query != nil {
		q := *s.Query
		c.Query = &q
	}
	if s.Corpus.Records != nil {
		c.Corpus.Records = append([]types.Article(nil), s.Corpus.Records...)
	}
	if s.Transcript != nil {
		c.Transcript = append([]types.ChatMessage(nil), s.Transcript...)
	}
	return &c
}

// reset returns the session to Idle, keeping its identifier.
func (s *Session) reset() {
	s.Query = nil
	s.Corpus = pubmed.Corpus{}
	s.Summary = ""
	s.Transcript = nil
}

// DisplayText is what the user currently sees: the summary followed by
// every chat turn in order. It is empty while the session is Idle.
func (s *Session) DisplayText() string {
	if !s.HasCorpus() {
		return ""
	}
	var b strings.Builder
	if s.Query != nil {
		fmt.Fprintf(&b, "Topic: %s\n\n", s.Query)
	}
	b.WriteString("Summary\n\n")
	b.WriteString(strings.TrimSpace(s.Summary))
	b.WriteString("\n")
	if len(s.Transcript) > 0 {
		b.WriteString("\nChat with the data\n")
		for _, m := range s.Transcript {
			fmt.Fprintf(&b, "\n%s: %s\n", speaker(m.Role), strings.TrimSpace(m.Content))
		}
	}
	return b.String()
}

func speaker(r types.Role) string {
	switch r {
	case types.RoleUser:
		return "You"
	case types.RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}
