// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// Snapshot is the exported form of a session. It is written on request
// and never read back.
type Snapshot struct {
	Session    string              `yaml:"session"`
	ExportedAt time.Time           `yaml:"exported_at"`
	Query      *types.SearchQuery  `yaml:"query,omitempty"`
	Found      int                 `yaml:"found"`
	Summary    string              `yaml:"summary,omitempty"`
	Records    []types.Article     `yaml:"records,omitempty"`
	Transcript []types.ChatMessage `yaml:"transcript,omitempty"`
}

// WriteSnapshot writes the session's query, records, summary, and
// transcript to w as YAML.
func WriteSnapshot(s *Session, w io.Writer) error {
	if !s.HasCorpus() {
		return ErrNoCorpus
	}
	snap := Snapshot{
		Session:    s.ID.String(),
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Query:      s.Query,
		Found:      s.Corpus.FoundCount(),
		Summary:    s.Summary,
		Records:    s.Corpus.Records,
		Transcript: s.Transcript,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}
